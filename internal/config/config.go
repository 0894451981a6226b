package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/input"
	"github.com/Versifine/stride/internal/world"
)

const (
	ModeWindow  = "window"
	ModeConsole = "console"
	ModeReplay  = "replay"
)

type Config struct {
	Mode        string              `yaml:"mode"`
	Logging     LoggingConfig       `yaml:"logging"`
	Window      WindowConfig        `yaml:"window"`
	Console     ConsoleConfig       `yaml:"console"`
	Input       input.Settings      `yaml:"input"`
	Controller  controller.Settings `yaml:"controller"`
	Audio       AudioConfig         `yaml:"audio"`
	World       WorldConfig         `yaml:"world"`
	Replay      ReplayConfig        `yaml:"replay"`
	Diagnostics DiagnosticsConfig   `yaml:"diagnostics"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	TPS    int     `yaml:"tps"`
	FOV    float64 `yaml:"fov"`
}

type ConsoleConfig struct {
	Tick time.Duration `yaml:"tick"`
	// Pulse is how long a tapped movement key stays held. Terminals report
	// presses only, never releases.
	Pulse time.Duration `yaml:"pulse"`
}

type AudioConfig struct {
	SampleRate int               `yaml:"sample_rate"`
	Volume     float64           `yaml:"volume"`
	Clips      map[string]string `yaml:"clips"`
}

// WorldConfig is the level plus spawn parameters. The layout is read inline
// unless LayoutFile points at a standalone layout.
type WorldConfig struct {
	world.Layout `yaml:",inline"`

	LayoutFile string     `yaml:"layout_file"`
	Spawn      [3]float64 `yaml:"spawn"`
	Radius     float64    `yaml:"radius"`
	EyeHeight  float64    `yaml:"eye_height"`
}

type ReplayConfig struct {
	Script string `yaml:"script"`
}

type DiagnosticsConfig struct {
	SentryDSN     string `yaml:"sentry_dsn"`
	Environment   string `yaml:"environment"`
	StatsviewAddr string `yaml:"statsview_addr"`
}

func Default() *Config {
	return &Config{
		Mode: ModeWindow,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "stride",
			TPS:    60,
			FOV:    70,
		},
		Console: ConsoleConfig{
			Tick:  50 * time.Millisecond,
			Pulse: 150 * time.Millisecond,
		},
		Input:      input.DefaultSettings(),
		Controller: controller.DefaultSettings(),
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     1,
		},
		World: WorldConfig{
			Layout:    world.Layout{FloorY: -1, FloorHalfExtent: 16},
			Spawn:     [3]float64{0.5, 0, 0.5},
			Radius:    0.3,
			EyeHeight: 1.6,
		},
	}
}

// Load overlays the YAML file at path on Default. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeConsole, ModeReplay:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be > 0, got %d", c.Window.TPS)
	}
	if c.Window.FOV <= 0 || c.Window.FOV >= 180 {
		return fmt.Errorf("window fov must be within (0, 180), got %v", c.Window.FOV)
	}
	if c.Console.Tick <= 0 || c.Console.Pulse <= 0 {
		return fmt.Errorf("console tick and pulse must be > 0")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample_rate must be > 0, got %d", c.Audio.SampleRate)
	}
	if c.World.Radius <= 0 {
		return fmt.Errorf("world radius must be > 0, got %v", c.World.Radius)
	}
	if c.Mode == ModeReplay && c.Replay.Script == "" {
		return fmt.Errorf("replay mode needs replay.script")
	}
	if err := c.World.Layout.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	if err := c.Controller.Validate(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}

// ResolveLayout returns the standalone layout when one is configured and the
// inline layout otherwise.
func (w WorldConfig) ResolveLayout() (world.Layout, error) {
	if w.LayoutFile == "" {
		return w.Layout, nil
	}
	return world.LoadLayout(w.LayoutFile)
}

// Seconds is the fixed step for one window tick.
func (w WindowConfig) Seconds() float64 {
	return 1 / float64(w.TPS)
}
