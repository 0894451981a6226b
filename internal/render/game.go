// Package render runs the controller in an ebiten window with a wireframe
// first-person view, the fatigue vignette and motion blur.
package render

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/diag"
	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
	"github.com/Versifine/stride/internal/physics"
	"github.com/Versifine/stride/internal/scene"
	"github.com/Versifine/stride/internal/world"
)

const (
	// blurTrail is the weight of the previous frame blended over the new one.
	blurTrail   = 0.6
	vignetteRes = 256
)

var (
	skyColor  = color.NRGBA{R: 24, G: 26, B: 34, A: 255}
	lineColor = color.NRGBA{R: 170, G: 200, B: 180, A: 255}
)

type Options struct {
	Window      config.WindowConfig
	Sampler     input.Sampler
	Controller  *controller.Controller
	Body        *physics.Capsule
	Camera      *scene.Camera
	Overlay     *scene.Overlay
	PostProcess *scene.PostProcess
	Layout      world.Layout
	Grid        *world.Grid
	Events      *event.Bus
}

// Game implements ebiten.Game. Each tick samples input and steps the
// controller by one fixed 1/TPS frame.
type Game struct {
	opts  Options
	edges []Edge
	hud   *hud

	frame    *ebiten.Image
	prev     *ebiten.Image
	vignette *ebiten.Image
}

func New(opts Options) (*Game, error) {
	switch {
	case opts.Sampler == nil:
		return nil, errors.New("render: sampler is nil")
	case opts.Controller == nil || opts.Body == nil || opts.Camera == nil:
		return nil, errors.New("render: controller, body and camera are required")
	}
	if opts.Overlay == nil {
		opts.Overlay = &scene.Overlay{}
	}
	if opts.PostProcess == nil {
		opts.PostProcess = &scene.PostProcess{}
	}
	g := &Game{
		opts:  opts,
		edges: BuildEdges(opts.Layout, opts.Grid),
		hud:   newHUD(opts.Events),
	}
	slog.Debug("Wireframe built", "edges", len(g.edges))
	return g, nil
}

// Run opens the window and blocks until it closes or Escape is pressed.
func Run(g *Game) error {
	w := g.opts.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = diag.Report("window", r)
		}
	}()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		slog.Info("Window closed by user")
		return ebiten.Termination
	}
	dt := g.opts.Window.Seconds()
	g.opts.Controller.Update(dt, g.opts.Sampler.Sample(dt))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.opts.Window.Width, g.opts.Window.Height
	if g.frame == nil {
		g.frame = ebiten.NewImage(w, h)
		g.prev = ebiten.NewImage(w, h)
		g.vignette = ebiten.NewImageFromImage(vignetteMask(vignetteRes))
	}

	g.drawWorld(g.frame)
	if g.opts.PostProcess.MotionBlur() {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(blurTrail)
		g.frame.DrawImage(g.prev, op)
	}
	g.prev.Clear()
	g.prev.DrawImage(g.frame, nil)
	screen.DrawImage(g.frame, nil)

	if c := g.opts.Overlay.Color(); c.A > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w)/vignetteRes, float64(h)/vignetteRes)
		op.ColorScale.ScaleWithColor(c)
		screen.DrawImage(g.vignette, op)
	}

	ctrl := g.opts.Controller
	ebitenutil.DebugPrint(screen, g.hud.text(ebiten.ActualTPS(), ctrl.State(), ctrl.Settings().Stamina.Max))
}

func (g *Game) drawWorld(dst *ebiten.Image) {
	dst.Fill(skyColor)
	body := g.opts.Body
	view := g.opts.Camera.View(body.Position(), body.Orientation())
	vp := newViewport(view, g.opts.Window.FOV, g.opts.Window.Width, g.opts.Window.Height)
	for _, e := range g.edges {
		p, q, ok := vp.segment(e)
		if !ok {
			continue
		}
		vector.StrokeLine(dst, float32(p.X()), float32(p.Y()), float32(q.X()), float32(q.Y()), 1, lineColor, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Window.Width, g.opts.Window.Height
}
