package controller

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/physics"
)

type Stance uint8

const (
	StanceStanding Stance = iota
	StanceSprinting
	StanceCrouching
)

func (s Stance) String() string {
	switch s {
	case StanceStanding:
		return "standing"
	case StanceSprinting:
		return "sprinting"
	case StanceCrouching:
		return "crouching"
	default:
		return "unknown"
	}
}

type FatigueState uint8

const (
	FatigueNormal FatigueState = iota
	FatigueExhausted
)

func (f FatigueState) String() string {
	if f == FatigueExhausted {
		return "exhausted"
	}
	return "normal"
}

// PlayerState is the per-entity record every frame step reads and writes.
type PlayerState struct {
	// Position mirrors the mover after the frame's displacement.
	Position mgl64.Vec3
	// Velocity is the smoothed horizontal velocity the controller requests.
	Velocity      mgl64.Vec3
	VerticalSpeed float64
	// BodyVelocity is the displacement the mover actually applied, per second.
	BodyVelocity mgl64.Vec3

	Grounded  bool
	Moving    bool
	Crouching bool
	Sprinting bool
	Stance    Stance

	Stamina    float64
	Fatigue    FatigueState
	SwayActive bool

	Yaw   float64
	Pitch float64

	HeadBobTimer  float64
	BobOffset     float64
	SwayPhase     float64
	SwayOffset    float64
	FootstepTimer float64
	VignetteAlpha float64
}

func (s PlayerState) Exhausted() bool {
	return s.Fatigue == FatigueExhausted
}

// Summary is a one-line status for consoles and overlays.
func (s PlayerState) Summary() string {
	return fmt.Sprintf("%s/%s stamina=%.2f pos=(%.2f, %.2f, %.2f) speed=%.2f yaw=%.1f pitch=%.1f grounded=%t",
		s.Stance, s.Fatigue, s.Stamina,
		s.Position.X(), s.Position.Y(), s.Position.Z(),
		physics.HorizontalLen(s.BodyVelocity), s.Yaw, s.Pitch, s.Grounded,
	)
}
