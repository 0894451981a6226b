package controller

import (
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/physics"
)

// Mover is the physics body: it owns position and orientation and resolves
// displacements against collision geometry.
type Mover interface {
	Move(displacement mgl64.Vec3) physics.Collision
	Grounded() bool
	Position() mgl64.Vec3
	Height() float64
	SetHeight(h float64)
	CanResize(h float64) bool
	Rotate(yawDegrees float64)
	Orientation() mgl64.Quat
}

// Camera is the view transform, local to the body.
type Camera interface {
	LocalPosition() mgl64.Vec3
	SetLocalPosition(p mgl64.Vec3)
	SetLocalRotation(q mgl64.Quat)
}

// AudioSource plays named clips.
type AudioSource interface {
	SetClip(name string)
	SetLoop(loop bool)
	Play()
	Stop()
	IsPlaying() bool
	PlayOneShot(name string)
}

// Overlay is a full-screen UI tint.
type Overlay interface {
	SetColor(c color.Color)
}

type PostProcess interface {
	SetMotionBlur(enabled bool)
}

type Cursor interface {
	Lock()
}

type Publisher interface {
	Publish(eventName string, evt any)
}

// Deps wires the controller to its collaborators. Mover and Camera are
// required; everything else may be nil and the matching feature is skipped.
type Deps struct {
	Mover       Mover
	Camera      Camera
	Footsteps   AudioSource
	Breathing   AudioSource
	Vignette    Overlay
	PostProcess PostProcess
	Cursor      Cursor
	Events      Publisher
	Rand        *rand.Rand
}
