package controller

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/physics"
)

type fakeMover struct {
	pos           mgl64.Vec3
	height        float64
	yaw           float64
	grounded      bool
	headroomBlock bool
	moves         []mgl64.Vec3
}

func (m *fakeMover) Move(d mgl64.Vec3) physics.Collision {
	m.moves = append(m.moves, d)
	var flags physics.Collision
	if m.grounded && d.Y() < 0 {
		d[1] = 0
		flags |= physics.CollidedBelow
	}
	m.pos = m.pos.Add(d)
	return flags
}

func (m *fakeMover) Grounded() bool           { return m.grounded }
func (m *fakeMover) Position() mgl64.Vec3     { return m.pos }
func (m *fakeMover) Height() float64          { return m.height }
func (m *fakeMover) SetHeight(h float64)      { m.height = h }
func (m *fakeMover) Rotate(deg float64)       { m.yaw += deg }
func (m *fakeMover) CanResize(h float64) bool { return h <= m.height || !m.headroomBlock }

func (m *fakeMover) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(m.yaw), mgl64.Vec3{0, 1, 0})
}

type fakeCamera struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

func (c *fakeCamera) LocalPosition() mgl64.Vec3     { return c.pos }
func (c *fakeCamera) SetLocalPosition(p mgl64.Vec3) { c.pos = p }
func (c *fakeCamera) SetLocalRotation(q mgl64.Quat) { c.rot = q }

type fakeAudio struct {
	clip     string
	loop     bool
	playing  bool
	plays    int
	stops    int
	oneShots []string
}

func (a *fakeAudio) SetClip(name string) { a.clip = name }
func (a *fakeAudio) SetLoop(loop bool)   { a.loop = loop }
func (a *fakeAudio) IsPlaying() bool     { return a.playing }

func (a *fakeAudio) Play() {
	a.playing = true
	a.plays++
}

func (a *fakeAudio) Stop() {
	a.playing = false
	a.stops++
}

func (a *fakeAudio) PlayOneShot(name string) {
	a.oneShots = append(a.oneShots, name)
}

type fakeOverlay struct {
	colors []color.NRGBA
}

func (o *fakeOverlay) SetColor(c color.Color) {
	o.colors = append(o.colors, color.NRGBAModel.Convert(c).(color.NRGBA))
}

func (o *fakeOverlay) last() color.NRGBA {
	if len(o.colors) == 0 {
		return color.NRGBA{}
	}
	return o.colors[len(o.colors)-1]
}

type fakePost struct {
	blur  bool
	calls int
}

func (p *fakePost) SetMotionBlur(enabled bool) {
	p.blur = enabled
	p.calls++
}

type fakeCursor struct {
	locked bool
}

func (c *fakeCursor) Lock() { c.locked = true }

type rig struct {
	ctrl      *Controller
	mover     *fakeMover
	camera    *fakeCamera
	footsteps *fakeAudio
	breathing *fakeAudio
	overlay   *fakeOverlay
	post      *fakePost
	cursor    *fakeCursor
	bus       *event.Bus
	events    []string
}

func newRig(t *testing.T, settings Settings) *rig {
	t.Helper()
	r := &rig{
		mover:     &fakeMover{height: settings.Crouch.StandingHeight, grounded: true},
		camera:    &fakeCamera{pos: mgl64.Vec3{0, 1.6, 0}},
		footsteps: &fakeAudio{},
		breathing: &fakeAudio{},
		overlay:   &fakeOverlay{},
		post:      &fakePost{},
		cursor:    &fakeCursor{},
		bus:       event.NewBus(),
	}
	for _, name := range []string{
		event.EventExhausted,
		event.EventRecovered,
		event.EventStanceChanged,
		event.EventFootstep,
		event.EventLanded,
	} {
		name := name
		r.bus.Subscribe(name, func(any) { r.events = append(r.events, name) })
	}

	ctrl, err := New(settings, Deps{
		Mover:       r.mover,
		Camera:      r.camera,
		Footsteps:   r.footsteps,
		Breathing:   r.breathing,
		Vignette:    r.overlay,
		PostProcess: r.post,
		Cursor:      r.cursor,
		Events:      r.bus,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.ctrl = ctrl
	return r
}

func (r *rig) count(eventName string) int {
	n := 0
	for _, e := range r.events {
		if e == eventName {
			n++
		}
	}
	return n
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}
