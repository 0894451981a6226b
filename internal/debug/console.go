// Package debug drives the controller from a raw-mode terminal: keys pulse
// movement, a ticker steps the simulation and a status line shows the state.
package debug

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/term"

	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/diag"
	"github.com/Versifine/stride/internal/input"
)

const (
	defaultTickInterval = 50 * time.Millisecond
	defaultMovePulse    = 150 * time.Millisecond
	lookStepDegrees     = 5.0
)

// Player is the simulated character the console steps.
type Player interface {
	Update(dt float64, frame input.Frame)
	State() controller.PlayerState
	SetStamina(v float64)
}

// Teleporter moves the physics body directly.
type Teleporter interface {
	SetPosition(pos mgl64.Vec3)
}

type Options struct {
	Tick  time.Duration
	Pulse time.Duration
	// Sensitivity converts the arrow-key look step from degrees to mouse counts.
	Sensitivity float64
	Output      io.Writer
}

type Console struct {
	player     Player
	teleporter Teleporter
	tick       time.Duration
	pulse      time.Duration
	lookCounts float64
	out        io.Writer
	now        func() time.Time

	// simMu serializes controller access between the ticker and commands.
	simMu sync.Mutex

	mu            sync.Mutex
	forwardUntil  time.Time
	backUntil     time.Time
	leftUntil     time.Time
	rightUntil    time.Time
	sprint        bool
	crouchPending bool
	jumpPending   bool
	mouseDX       float64
	mouseDY       float64
	commandMode   bool
	commandBuf    []rune
	statusWidth   int
	cancel        context.CancelFunc
}

func NewConsole(player Player, teleporter Teleporter, opts Options) *Console {
	if opts.Tick <= 0 {
		opts.Tick = defaultTickInterval
	}
	if opts.Pulse <= 0 {
		opts.Pulse = defaultMovePulse
	}
	if opts.Sensitivity <= 0 {
		opts.Sensitivity = controller.DefaultSettings().Look.Sensitivity
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Console{
		player:     player,
		teleporter: teleporter,
		tick:       opts.Tick,
		pulse:      opts.Pulse,
		lookCounts: lookStepDegrees / opts.Sensitivity,
		out:        opts.Output,
		now:        time.Now,
	}
}

// Start puts stdin in raw mode and runs until ctx ends, :quit is entered or
// stdin closes.
func (c *Console) Start(ctx context.Context) error {
	if c == nil || c.player == nil {
		return fmt.Errorf("console player is nil")
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
		c.print("\r\n")
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	c.print("[debug] console started (W/A/S/D pulse, arrows look, Space jump, [ crouch, ] sprint, : command)\r\n")
	c.renderStatusLine()

	tickErr := make(chan error, 1)
	go func() { tickErr <- c.tickLoop(ctx) }()

	keys := make(chan byte)
	readErr := make(chan error, 1)
	go readKeys(ctx, bufio.NewReader(os.Stdin), keys, readErr)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-tickErr:
			return err
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read console input: %w", err)
		case b := <-keys:
			c.handleKey(keyReader{keys: keys}, b)
		}
	}
}

// readKeys forwards bytes from r until a read fails or ctx ends. A byte that
// arrives after ctx ends is dropped.
func readKeys(ctx context.Context, r io.ByteReader, keys chan<- byte, errs chan<- error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			select {
			case errs <- err:
			case <-ctx.Done():
			}
			return
		}
		select {
		case keys <- b:
		case <-ctx.Done():
			return
		}
	}
}

// byteReader yields the rest of an escape sequence.
type byteReader interface {
	ReadByte() (byte, error)
}

type keyReader struct {
	keys <-chan byte
}

func (r keyReader) ReadByte() (byte, error) {
	select {
	case b := <-r.keys:
		return b, nil
	case <-time.After(50 * time.Millisecond):
		return 0, io.EOF
	}
}

func (c *Console) tickLoop(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = diag.Report("console", r)
		}
	}()
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	dt := c.tick.Seconds()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			frame := c.Sample(dt)
			c.simMu.Lock()
			c.player.Update(dt, frame)
			c.simMu.Unlock()
			c.renderStatusLine()
		}
	}
}

// Sample implements input.Sampler. Presses and look deltas are consumed.
func (c *Console) Sample(float64) input.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	held := func(until time.Time) bool { return now.Before(until) }

	f := input.Frame{
		MoveX:         input.Digital(held(c.rightUntil), held(c.leftUntil)),
		MoveZ:         input.Digital(held(c.forwardUntil), held(c.backUntil)),
		MouseDX:       c.mouseDX,
		MouseDY:       c.mouseDY,
		Sprint:        c.sprint,
		CrouchPressed: c.crouchPending,
		JumpPressed:   c.jumpPending,
	}
	c.mouseDX, c.mouseDY = 0, 0
	c.crouchPending, c.jumpPending = false, false
	return f
}

func (c *Console) handleKey(reader byteReader, b byte) {
	if c.isCommandMode() {
		c.handleCommandByte(b)
		return
	}

	switch b {
	case ':':
		c.enterCommandMode()
		return
	case 'w', 'W':
		c.pulseMove(&c.forwardUntil, &c.backUntil)
	case 's', 'S':
		c.pulseMove(&c.backUntil, &c.forwardUntil)
	case 'a', 'A':
		c.pulseMove(&c.leftUntil, &c.rightUntil)
	case 'd', 'D':
		c.pulseMove(&c.rightUntil, &c.leftUntil)
	case ' ':
		c.update(func() { c.jumpPending = true })
	case '[':
		c.update(func() { c.crouchPending = true })
	case ']':
		c.toggleSprint()
	case 'x', 'X':
		c.clearInput()
	case 27: // ESC + arrow sequence
		next, err := reader.ReadByte()
		if err != nil || next != '[' {
			return
		}
		arrow, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch arrow {
		case 'D': // left
			c.update(func() { c.mouseDX -= c.lookCounts })
		case 'C': // right
			c.update(func() { c.mouseDX += c.lookCounts })
		case 'A': // up
			c.update(func() { c.mouseDY -= c.lookCounts })
		case 'B': // down
			c.update(func() { c.mouseDY += c.lookCounts })
		}
	}
	c.renderStatusLine()
}

func (c *Console) enterCommandMode() {
	c.update(func() {
		c.commandMode = true
		c.commandBuf = c.commandBuf[:0]
	})
	c.print("\r\n:")
}

func (c *Console) handleCommandByte(b byte) {
	switch b {
	case 13, 10: // Enter
		var cmd string
		c.update(func() {
			cmd = strings.TrimSpace(string(c.commandBuf))
			c.commandMode = false
			c.commandBuf = c.commandBuf[:0]
		})
		c.print("\r\n")
		if cmd != "" {
			c.executeCommand(cmd)
		}
		c.renderStatusLine()
	case 27: // ESC cancel command mode
		c.update(func() {
			c.commandMode = false
			c.commandBuf = c.commandBuf[:0]
		})
		c.print("\r\n[debug] command cancelled\r\n")
		c.renderStatusLine()
	case 8, 127: // Backspace
		var buf string
		c.update(func() {
			if len(c.commandBuf) > 0 {
				c.commandBuf = c.commandBuf[:len(c.commandBuf)-1]
			}
			buf = string(c.commandBuf)
		})
		c.print("\r:%s \r:%s", buf, buf)
	default:
		if b < 32 || b > 126 {
			return
		}
		var buf string
		c.update(func() {
			c.commandBuf = append(c.commandBuf, rune(b))
			buf = string(c.commandBuf)
		})
		c.print("\r:%s", buf)
	}
}

func (c *Console) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "help":
		c.printHelp()
	case "state":
		c.simMu.Lock()
		st := c.player.State()
		c.simMu.Unlock()
		c.print("[debug] %s\r\n", st.Summary())
		c.print("[debug] vel=(%.3f,%.3f,%.3f) vy=%.3f bob=%.3f sway=%.3f vignette=%.3f step_timer=%.3f\r\n",
			st.Velocity.X(), st.Velocity.Y(), st.Velocity.Z(), st.VerticalSpeed,
			st.BobOffset, st.SwayOffset, st.VignetteAlpha, st.FootstepTimer,
		)
	case "stamina":
		if len(parts) != 2 {
			c.print("[debug] usage: :stamina <value>\r\n")
			return
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			c.print("[debug] invalid stamina value\r\n")
			return
		}
		c.simMu.Lock()
		c.player.SetStamina(v)
		got := c.player.State().Stamina
		c.simMu.Unlock()
		c.print("[debug] stamina set to %.3f\r\n", got)
	case "tp":
		if len(parts) != 4 {
			c.print("[debug] usage: :tp <x> <y> <z>\r\n")
			return
		}
		x, err1 := strconv.ParseFloat(parts[1], 64)
		y, err2 := strconv.ParseFloat(parts[2], 64)
		z, err3 := strconv.ParseFloat(parts[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			c.print("[debug] invalid tp args\r\n")
			return
		}
		if c.teleporter == nil {
			c.print("[debug] tp unavailable\r\n")
			return
		}
		c.simMu.Lock()
		c.teleporter.SetPosition(mgl64.Vec3{x, y, z})
		c.simMu.Unlock()
		c.print("[debug] tp to (%.3f, %.3f, %.3f)\r\n", x, y, z)
	case "quit", "q":
		c.mu.Lock()
		cancel := c.cancel
		c.mu.Unlock()
		if cancel != nil {
			cancel()
		}
	default:
		c.print("[debug] unknown command: %s\r\n", parts[0])
	}
}

func (c *Console) printHelp() {
	c.print("[debug] keys:\r\n")
	c.print("  W/S/A/D: pulse movement (%s)\r\n", c.pulse)
	c.print("  Arrows: look %.0f degrees\r\n", lookStepDegrees)
	c.print("  Space: jump\r\n")
	c.print("  [: crouch toggle\r\n")
	c.print("  ]: sprint toggle\r\n")
	c.print("  X: clear all input\r\n")
	c.print("  : enter command mode\r\n")
	c.print("[debug] commands:\r\n")
	c.print("  :state\r\n")
	c.print("  :stamina <value>\r\n")
	c.print("  :tp <x> <y> <z>\r\n")
	c.print("  :quit\r\n")
	c.print("  :help\r\n")
}

func (c *Console) renderStatusLine() {
	c.mu.Lock()
	if c.commandMode {
		c.mu.Unlock()
		return
	}
	sprint := c.sprint
	width := c.statusWidth
	c.mu.Unlock()

	c.simMu.Lock()
	st := c.player.State()
	c.simMu.Unlock()

	line := fmt.Sprintf("[SPR:%s] %s", boolLabel(sprint), st.Summary())
	padding := ""
	if width > len(line) {
		padding = strings.Repeat(" ", width-len(line))
	}
	c.print("\r%s%s", line, padding)

	c.mu.Lock()
	if len(line) > c.statusWidth {
		c.statusWidth = len(line)
	}
	c.mu.Unlock()
}

func (c *Console) print(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		slog.Debug("console write failed", "error", err)
	}
}

func (c *Console) update(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

func (c *Console) isCommandMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandMode
}

// pulseMove holds one direction for the pulse duration and cancels its
// opposite.
func (c *Console) pulseMove(until, opposite *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*until = c.now().Add(c.pulse)
	*opposite = time.Time{}
}

func (c *Console) toggleSprint() {
	c.mu.Lock()
	c.sprint = !c.sprint
	enabled := c.sprint
	c.mu.Unlock()
	slog.Debug("debug sprint toggled", "enabled", enabled)
}

func (c *Console) clearInput() {
	c.mu.Lock()
	c.forwardUntil = time.Time{}
	c.backUntil = time.Time{}
	c.leftUntil = time.Time{}
	c.rightUntil = time.Time{}
	c.sprint = false
	c.crouchPending = false
	c.jumpPending = false
	c.mouseDX, c.mouseDY = 0, 0
	c.mu.Unlock()
}

func boolLabel(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
