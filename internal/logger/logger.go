package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Level  string
	Format string // "console", "text", "json"
	Output io.Writer
	// File, when set, receives a copy of every line.
	File string
	// RawTerminal ends console lines with CRLF for terminals in raw mode.
	RawTerminal bool
}

// Init installs the default slog logger. The returned func closes the log
// file, if one was opened.
func Init(cfg Config) (func() error, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	closeFn := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(out, f)
		closeFn = f.Close
	}
	slog.SetDefault(slog.New(newHandler(cfg, out)))
	return closeFn, nil
}

func newHandler(cfg Config, out io.Writer) slog.Handler {
	level := parseLevel(cfg.Level)
	switch cfg.Format {
	case "json":
		return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	case "text":
		return slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	default:
		eol := "\n"
		if cfg.RawTerminal {
			eol = "\r\n"
		}
		return &consoleHandler{w: out, level: level, eol: eol}
	}
}

func parseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// consoleHandler outputs human-friendly log lines:
//
//	12:00:00 INFO  Stamina exhausted  stamina=0.000 max=5.000
type consoleHandler struct {
	w      io.Writer
	level  slog.Level
	eol    string
	prefix string
	attrs  []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteByte(' ')
	b.WriteString(levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		b.WriteString(formatAttr("", a))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(formatAttr(h.prefix, a))
		return true
	})

	eol := h.eol
	if eol == "" {
		eol = "\n"
	}
	b.WriteString(eol)
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs bakes the group prefix into the stored attrs so later groups
// only apply to attrs added after them.
func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	if h.prefix != "" {
		name = h.prefix + "." + name
	}
	next.prefix = name
	return next
}

func (h *consoleHandler) clone() *consoleHandler {
	return &consoleHandler{
		w:      h.w,
		level:  h.level,
		eol:    h.eol,
		prefix: h.prefix,
		attrs:  append([]slog.Attr{}, h.attrs...),
	}
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

// formatAttr renders one attr. Floats get three decimals so per-frame state
// lines stay aligned.
func formatAttr(prefix string, a slog.Attr) string {
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindFloat64:
		return "  " + key + "=" + strconv.FormatFloat(v.Float64(), 'f', 3, 64)
	case slog.KindGroup:
		var b strings.Builder
		for _, ga := range v.Group() {
			b.WriteString(formatAttr(key, ga))
		}
		return b.String()
	default:
		return fmt.Sprintf("  %s=%v", key, v)
	}
}
