// Package replay runs the controller headless over a scripted input file.
package replay

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/diag"
	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
)

type Player interface {
	Update(dt float64, frame input.Frame)
	State() controller.PlayerState
}

type Options struct {
	Player Player
	Script *input.Script
	Events *event.Bus
	// LogEvery logs the state every n frames at debug level. Zero disables it.
	LogEvery int
}

type Result struct {
	Frames  int
	Seconds float64
	Final   controller.PlayerState
	Events  map[string]int
}

// Run steps the player once per scripted frame at the script's dt.
func Run(ctx context.Context, opts Options) (res Result, err error) {
	if opts.Player == nil || opts.Script == nil {
		return res, errors.New("replay needs a player and a script")
	}
	defer func() {
		if r := recover(); r != nil {
			err = diag.Report("replay", r)
		}
	}()

	res.Events = make(map[string]int)
	if opts.Events != nil {
		unsubscribe := opts.Events.SubscribeAll(func(name string, _ any) { res.Events[name]++ })
		defer unsubscribe()
	}

	s := opts.Script
	slog.Info("Replay started", "frames", s.Len(), "dt", s.DT)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		opts.Player.Update(s.DT, s.Sample(s.DT))
		res.Frames++
		res.Seconds += s.DT
		if opts.LogEvery > 0 && res.Frames%opts.LogEvery == 0 {
			slog.Debug("Replay frame", "frame", res.Frames, "state", opts.Player.State().Summary())
		}
	}
	res.Final = opts.Player.State()
	slog.Info("Replay finished", "frames", res.Frames, "seconds", res.Seconds, "state", res.Final.Summary())
	return res, nil
}
