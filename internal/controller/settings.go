package controller

import (
	"errors"
	"fmt"
)

var ErrInvalidSettings = errors.New("invalid controller settings")

type Settings struct {
	Movement  MovementSettings  `yaml:"movement"`
	Stamina   StaminaSettings   `yaml:"stamina"`
	Look      LookSettings      `yaml:"look"`
	HeadBob   HeadBobSettings   `yaml:"head_bob"`
	Footsteps FootstepSettings  `yaml:"footsteps"`
	Crouch    CrouchSettings    `yaml:"crouch"`
	Vignette  VignetteSettings  `yaml:"vignette"`
	Fatigue   FatigueSettings   `yaml:"fatigue"`
	Breathing BreathingSettings `yaml:"breathing"`
}

type MovementSettings struct {
	WalkSpeed    float64 `yaml:"walk_speed"`
	SprintSpeed  float64 `yaml:"sprint_speed"`
	CrouchSpeed  float64 `yaml:"crouch_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	// Gravity is the vertical acceleration in m/s², negative is down.
	Gravity          float64 `yaml:"gravity"`
	GroundStickSpeed float64 `yaml:"ground_stick_speed"`
	// JumpHeight of zero disables jumping.
	JumpHeight float64 `yaml:"jump_height"`
	// MovingThreshold is the horizontal speed above which the body counts as
	// moving for head bob and footsteps.
	MovingThreshold float64 `yaml:"moving_threshold"`
}

type StaminaSettings struct {
	Max          float64 `yaml:"max"`
	DrainRate    float64 `yaml:"drain_rate"`
	RecoveryRate float64 `yaml:"recovery_rate"`
}

type LookSettings struct {
	// Sensitivity is degrees of rotation per mouse count.
	Sensitivity   float64 `yaml:"sensitivity"`
	InvertY       bool    `yaml:"invert_y"`
	VerticalLimit float64 `yaml:"vertical_limit"`
}

type HeadBobSettings struct {
	Enabled bool `yaml:"enabled"`
	// Frequency is bob phase in radians per second of movement.
	Frequency   float64 `yaml:"frequency"`
	Amplitude   float64 `yaml:"amplitude"`
	ReturnSpeed float64 `yaml:"return_speed"`
}

type FootstepSettings struct {
	Interval    float64  `yaml:"interval"`
	CrouchScale float64  `yaml:"crouch_scale"`
	SprintScale float64  `yaml:"sprint_scale"`
	WalkClips   []string `yaml:"walk_clips"`
	RunClips    []string `yaml:"run_clips"`
	CrouchClips []string `yaml:"crouch_clips"`
}

type CrouchSettings struct {
	Height         float64 `yaml:"height"`
	StandingHeight float64 `yaml:"standing_height"`
}

type RGBA struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

type VignetteSettings struct {
	Color     RGBA    `yaml:"color"`
	FadeSpeed float64 `yaml:"fade_speed"`
}

type FatigueSettings struct {
	SwayEnabled   bool    `yaml:"sway_enabled"`
	SwayIntensity float64 `yaml:"sway_intensity"`
	// SwayFrequency is in cycles per second.
	SwayFrequency float64 `yaml:"sway_frequency"`
}

type BreathingSettings struct {
	HeavyClip string `yaml:"heavy_clip"`
	LightClip string `yaml:"light_clip"`
}

func DefaultSettings() Settings {
	return Settings{
		Movement: MovementSettings{
			WalkSpeed:        2,
			SprintSpeed:      4,
			CrouchSpeed:      1,
			Acceleration:     10,
			Deceleration:     15,
			Gravity:          -9.81,
			GroundStickSpeed: 2,
			JumpHeight:       1,
			MovingThreshold:  0.01,
		},
		Stamina: StaminaSettings{
			Max:          5,
			DrainRate:    1,
			RecoveryRate: 0.5,
		},
		Look: LookSettings{
			Sensitivity:   0.15,
			VerticalLimit: 80,
		},
		HeadBob: HeadBobSettings{
			Enabled:     true,
			Frequency:   1.5,
			Amplitude:   0.1,
			ReturnSpeed: 8,
		},
		Footsteps: FootstepSettings{
			Interval:    0.5,
			CrouchScale: 1.5,
			SprintScale: 1.5,
		},
		Crouch: CrouchSettings{
			Height:         1.2,
			StandingHeight: 1.8,
		},
		Vignette: VignetteSettings{
			Color:     RGBA{A: 0.5},
			FadeSpeed: 2,
		},
		Fatigue: FatigueSettings{
			SwayEnabled:   true,
			SwayIntensity: 0.05,
			SwayFrequency: 1.2,
		},
	}
}

func (s Settings) Validate() error {
	m := s.Movement
	switch {
	case m.WalkSpeed < 0 || m.SprintSpeed < 0 || m.CrouchSpeed < 0:
		return fmt.Errorf("%w: speeds must be >= 0", ErrInvalidSettings)
	case m.Acceleration <= 0 || m.Deceleration <= 0:
		return fmt.Errorf("%w: acceleration and deceleration must be > 0", ErrInvalidSettings)
	case m.Gravity > 0:
		return fmt.Errorf("%w: gravity must be <= 0, got %v", ErrInvalidSettings, m.Gravity)
	case m.JumpHeight < 0 || m.GroundStickSpeed < 0 || m.MovingThreshold < 0:
		return fmt.Errorf("%w: jump height, ground stick speed and moving threshold must be >= 0", ErrInvalidSettings)
	}

	st := s.Stamina
	if st.Max <= 0 {
		return fmt.Errorf("%w: stamina max must be > 0, got %v", ErrInvalidSettings, st.Max)
	}
	if st.DrainRate < 0 || st.RecoveryRate < 0 {
		return fmt.Errorf("%w: stamina rates must be >= 0", ErrInvalidSettings)
	}

	if s.Look.VerticalLimit < 0 || s.Look.VerticalLimit > 90 {
		return fmt.Errorf("%w: vertical look limit must be within [0, 90], got %v", ErrInvalidSettings, s.Look.VerticalLimit)
	}

	c := s.Crouch
	if c.Height <= 0 || c.StandingHeight <= 0 {
		return fmt.Errorf("%w: capsule heights must be > 0", ErrInvalidSettings)
	}
	if c.Height > c.StandingHeight {
		return fmt.Errorf("%w: crouch height %v exceeds standing height %v", ErrInvalidSettings, c.Height, c.StandingHeight)
	}

	f := s.Footsteps
	if f.Interval <= 0 || f.CrouchScale <= 0 || f.SprintScale <= 0 {
		return fmt.Errorf("%w: footstep interval and scales must be > 0", ErrInvalidSettings)
	}

	if a := s.Vignette.Color.A; a < 0 || a > 1 {
		return fmt.Errorf("%w: vignette alpha must be within [0, 1], got %v", ErrInvalidSettings, a)
	}
	return nil
}
