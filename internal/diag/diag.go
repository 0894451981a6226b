// Package diag wires optional crash reporting and the runtime stats viewer.
package diag

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const flushTimeout = 5 * time.Second

type Options struct {
	SentryDSN     string
	Environment   string
	Release       string
	StatsviewAddr string
}

// Start enables whatever o configures. The returned func flushes Sentry and
// stops the stats viewer.
func Start(o Options) (func(), error) {
	var stops []func()
	if o.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         o.SentryDSN,
			Environment: o.Environment,
			Release:     o.Release,
		})
		if err != nil {
			return nil, fmt.Errorf("init sentry: %w", err)
		}
		stops = append(stops, func() { sentry.Flush(flushTimeout) })
		slog.Info("Crash reporting enabled", "environment", o.Environment)
	}
	if o.StatsviewAddr != "" {
		// must be configured before statsview.New
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(o.StatsviewAddr))
		mgr := statsview.New()
		go func() {
			if err := mgr.Start(); err != nil {
				slog.Warn("Stats viewer stopped", "error", err)
			}
		}()
		stops = append(stops, mgr.Stop)
		slog.Info("Stats viewer listening", "addr", "http://"+o.StatsviewAddr+"/debug/statsview")
	}
	return func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
	}, nil
}

// Report logs a recovered panic from a runner loop, forwards it to Sentry and
// turns it into an error.
func Report(runner string, recovered any) error {
	err := fmt.Errorf("%s loop panic: %v", runner, recovered)
	slog.Error("Runner panic", "runner", runner, "panic", recovered)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("runner", runner)
	})
	hub.Recover(err)
	hub.Flush(flushTimeout)
	return err
}
