package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/audio"
	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/debug"
	"github.com/Versifine/stride/internal/diag"
	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
	ebiteninput "github.com/Versifine/stride/internal/input/ebiten"
	"github.com/Versifine/stride/internal/logger"
	"github.com/Versifine/stride/internal/physics"
	"github.com/Versifine/stride/internal/render"
	"github.com/Versifine/stride/internal/replay"
	"github.com/Versifine/stride/internal/scene"
	"github.com/Versifine/stride/internal/world"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	mode := flag.String("mode", "", "override the run mode: window, console or replay")
	script := flag.String("script", "", "override the replay script path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		return 1
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *script != "" {
		cfg.Replay.Script = *script
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		return 1
	}

	closeLog, err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		File:        cfg.Logging.File,
		RawTerminal: cfg.Mode == config.ModeConsole,
	})
	if err != nil {
		slog.Error("Failed to init logger", "error", err)
		return 1
	}
	defer closeLog()

	stopDiag, err := diag.Start(diag.Options{
		SentryDSN:     cfg.Diagnostics.SentryDSN,
		Environment:   cfg.Diagnostics.Environment,
		StatsviewAddr: cfg.Diagnostics.StatsviewAddr,
	})
	if err != nil {
		slog.Error("Failed to start diagnostics", "error", err)
		return 1
	}
	defer stopDiag()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Run failed", "mode", cfg.Mode, "error", err)
		return 1
	}
	return 0
}

// sim is the simulation shared by every runner.
type sim struct {
	body    *physics.Capsule
	camera  *scene.Camera
	overlay *scene.Overlay
	post    *scene.PostProcess
	layout  world.Layout
	grid    *world.Grid
	bus     *event.Bus
}

func newSim(cfg *config.Config) (*sim, error) {
	layout, err := cfg.World.ResolveLayout()
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	grid, err := world.Build(layout)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	slog.Info("World built", "cells", grid.Len(), "boxes", len(layout.Boxes))

	s := &sim{
		body:    physics.NewCapsule(mgl64.Vec3(cfg.World.Spawn), cfg.World.Radius, cfg.Controller.Crouch.StandingHeight, grid),
		camera:  scene.NewCamera(mgl64.Vec3{0, cfg.World.EyeHeight, 0}),
		overlay: &scene.Overlay{},
		post:    &scene.PostProcess{},
		layout:  layout,
		grid:    grid,
		bus:     event.NewBus(),
	}
	s.bus.SubscribeAll(func(name string, evt any) {
		level := slog.LevelInfo
		if name == event.EventFootstep {
			level = slog.LevelDebug
		}
		slog.Log(context.Background(), level, "Controller event", "event", event.Describe(name, evt))
	})
	return s, nil
}

func (s *sim) deps() controller.Deps {
	return controller.Deps{
		Mover:       s.body,
		Camera:      s.camera,
		Vignette:    s.overlay,
		PostProcess: s.post,
		Events:      s.bus,
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	s, err := newSim(cfg)
	if err != nil {
		return err
	}
	switch cfg.Mode {
	case config.ModeWindow:
		return runWindow(cfg, s)
	case config.ModeConsole:
		return runConsole(ctx, cfg, s)
	case config.ModeReplay:
		return runReplay(ctx, cfg, s)
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func runWindow(cfg *config.Config, s *sim) error {
	bank := audio.NewBank(cfg.Audio.SampleRate)
	if err := bank.LoadAll(cfg.Audio.Clips); err != nil {
		return err
	}
	actx := audio.NewContext(cfg.Audio.SampleRate)

	keyboard, err := ebiteninput.NewKeyboard(cfg.Input.Bindings)
	if err != nil {
		return err
	}

	deps := s.deps()
	deps.Footsteps = audio.NewSource("footsteps", actx, bank, cfg.Audio.Volume)
	deps.Breathing = audio.NewSource("breathing", actx, bank, cfg.Audio.Volume)
	deps.Cursor = ebiteninput.Cursor{}
	ctrl, err := controller.New(cfg.Controller, deps)
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	game, err := render.New(render.Options{
		Window:      cfg.Window,
		Sampler:     input.NewDeviceSampler(keyboard, cfg.Input),
		Controller:  ctrl,
		Body:        s.body,
		Camera:      s.camera,
		Overlay:     s.overlay,
		PostProcess: s.post,
		Layout:      s.layout,
		Grid:        s.grid,
		Events:      s.bus,
	})
	if err != nil {
		return err
	}
	slog.Info("Opening window", "width", cfg.Window.Width, "height", cfg.Window.Height, "tps", cfg.Window.TPS)
	return render.Run(game)
}

func runConsole(ctx context.Context, cfg *config.Config, s *sim) error {
	deps := s.deps()
	deps.Footsteps = audio.NewLogSource("footsteps")
	deps.Breathing = audio.NewLogSource("breathing")
	ctrl, err := controller.New(cfg.Controller, deps)
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}
	console := debug.NewConsole(ctrl, s.body, debug.Options{
		Tick:        cfg.Console.Tick,
		Pulse:       cfg.Console.Pulse,
		Sensitivity: cfg.Controller.Look.Sensitivity,
	})
	return console.Start(ctx)
}

func runReplay(ctx context.Context, cfg *config.Config, s *sim) error {
	script, err := input.LoadScript(cfg.Replay.Script)
	if err != nil {
		return err
	}
	deps := s.deps()
	deps.Footsteps = audio.NewLogSource("footsteps")
	deps.Breathing = audio.NewLogSource("breathing")
	ctrl, err := controller.New(cfg.Controller, deps)
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	res, err := replay.Run(ctx, replay.Options{
		Player:   ctrl,
		Script:   script,
		Events:   s.bus,
		LogEvery: 30,
	})
	if err != nil {
		return err
	}
	for _, name := range event.All {
		if n := res.Events[name]; n > 0 {
			slog.Info("Replay events", "event", name, "count", n)
		}
	}
	return nil
}
