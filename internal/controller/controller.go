// Package controller implements a first-person character controller: stance,
// locomotion, mouse look, stamina with fatigue hysteresis, and cosmetic
// feedback, stepped once per frame over a single PlayerState.
package controller

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/input"
)

var (
	ErrNoMover  = errors.New("controller mover is nil")
	ErrNoCamera = errors.New("controller camera is nil")
)

type Controller struct {
	settings Settings
	deps     Deps
	state    PlayerState

	cameraOrigin mgl64.Vec3
	wasGrounded  bool
	started      bool
}

func New(settings Settings, deps Deps) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if deps.Mover == nil {
		return nil, ErrNoMover
	}
	if deps.Camera == nil {
		return nil, ErrNoCamera
	}
	if deps.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		deps.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Controller{settings: settings, deps: deps}, nil
}

// Start initializes the state for a freshly spawned entity. Update calls it
// on the first frame if the caller did not.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true

	m := c.deps.Mover
	m.SetHeight(c.settings.Crouch.StandingHeight)
	c.state = PlayerState{
		Position: m.Position(),
		Grounded: m.Grounded(),
		Stamina:  c.settings.Stamina.Max,
		Stance:   StanceStanding,
	}
	c.wasGrounded = c.state.Grounded
	c.cameraOrigin = c.deps.Camera.LocalPosition()

	if c.deps.Cursor != nil {
		c.deps.Cursor.Lock()
	}
	if c.deps.Vignette != nil {
		c.deps.Vignette.SetColor(color.NRGBA{})
	}
	if c.deps.PostProcess != nil {
		c.deps.PostProcess.SetMotionBlur(false)
	}
	slog.Debug("Controller started",
		"position", fmt.Sprintf("(%.2f, %.2f, %.2f)", c.state.Position.X(), c.state.Position.Y(), c.state.Position.Z()),
		"stamina", c.state.Stamina,
	)
}

// Update advances the controller by dt seconds. Frames with dt <= 0 are ignored.
func (c *Controller) Update(dt float64, frame input.Frame) {
	if dt <= 0 {
		return
	}
	c.Start()

	c.state.Grounded = c.deps.Mover.Grounded()
	c.updateStance(frame)
	c.updateLocomotion(dt, frame)
	c.updateLook(frame)
	c.updateStamina(dt)
	c.updateHeadBob(dt)
	c.updateSway(dt)
	c.updateFootsteps(dt)
	c.updateVignette(dt)
	c.applyCamera()
}

// State returns a copy of the current player state.
func (c *Controller) State() PlayerState {
	return c.state
}

func (c *Controller) Settings() Settings {
	return c.settings
}

// SetStamina overrides the stamina value, clamped to [0, max]. The fatigue
// state is left alone; the next Update applies the usual transitions.
func (c *Controller) SetStamina(v float64) {
	c.state.Stamina = clamp(v, 0, c.settings.Stamina.Max)
}

func (c *Controller) publish(eventName string, evt any) {
	if c.deps.Events != nil {
		c.deps.Events.Publish(eventName, evt)
	}
}

// applyCamera composes the camera local position from its origin, the crouch
// eye drop, head bob and fatigue sway.
func (c *Controller) applyCamera() {
	drop := c.settings.Crouch.StandingHeight - c.deps.Mover.Height()
	offset := mgl64.Vec3{c.state.SwayOffset, c.state.BobOffset - drop, 0}
	c.deps.Camera.SetLocalPosition(c.cameraOrigin.Add(offset))
}
