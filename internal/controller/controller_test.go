package controller

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
)

var sprintForward = input.Frame{MoveZ: 1, Sprint: true}

func staminaSettings() Settings {
	s := DefaultSettings()
	s.Stamina = StaminaSettings{Max: 5, DrainRate: 1, RecoveryRate: 0.5}
	s.Breathing = BreathingSettings{HeavyClip: "heavy", LightClip: "light"}
	return s
}

func run(c *Controller, frames int, dt float64, f input.Frame) {
	for i := 0; i < frames; i++ {
		c.Update(dt, f)
	}
}

func TestNew_RequiresMoverAndCamera(t *testing.T) {
	s := DefaultSettings()
	if _, err := New(s, Deps{Camera: &fakeCamera{}}); !errors.Is(err, ErrNoMover) {
		t.Fatalf("New without mover error = %v, want ErrNoMover", err)
	}
	if _, err := New(s, Deps{Mover: &fakeMover{}}); !errors.Is(err, ErrNoCamera) {
		t.Fatalf("New without camera error = %v, want ErrNoCamera", err)
	}
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"crouch taller than standing", func(s *Settings) { s.Crouch.Height = 2 }},
		{"zero stamina max", func(s *Settings) { s.Stamina.Max = 0 }},
		{"look limit past vertical", func(s *Settings) { s.Look.VerticalLimit = 95 }},
		{"upward gravity", func(s *Settings) { s.Movement.Gravity = 1 }},
		{"zero footstep interval", func(s *Settings) { s.Footsteps.Interval = 0 }},
		{"vignette alpha above one", func(s *Settings) { s.Vignette.Color.A = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			_, err := New(s, Deps{Mover: &fakeMover{}, Camera: &fakeCamera{}})
			if !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("New error = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestStart_InitializesStateAndCollaborators(t *testing.T) {
	r := newRig(t, staminaSettings())
	r.mover.height = 1.0

	r.ctrl.Start()

	st := r.ctrl.State()
	if st.Stamina != 5 || st.Exhausted() {
		t.Fatalf("stamina=%v exhausted=%t, want 5/false", st.Stamina, st.Exhausted())
	}
	if !r.cursor.locked {
		t.Fatalf("cursor not locked")
	}
	if r.post.blur || r.post.calls != 1 {
		t.Fatalf("motion blur = %t after %d calls, want disabled once", r.post.blur, r.post.calls)
	}
	if got := r.overlay.last(); got.A != 0 {
		t.Fatalf("vignette alpha = %d, want 0", got.A)
	}
	approxEqual(t, r.mover.height, 1.8, 1e-9, "height")
}

func TestUpdate_IgnoresNonPositiveDelta(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.ctrl.Update(0, sprintForward)
	r.ctrl.Update(-1, sprintForward)
	if len(r.mover.moves) != 0 {
		t.Fatalf("mover moved %d times, want 0", len(r.mover.moves))
	}
}

func TestStamina_SprintFiveSecondsExhausts(t *testing.T) {
	r := newRig(t, staminaSettings())

	run(r.ctrl, 19, 0.25, sprintForward)
	st := r.ctrl.State()
	approxEqual(t, st.Stamina, 0.25, 1e-9, "stamina after 4.75s")
	if st.Exhausted() {
		t.Fatalf("exhausted before stamina reached 0")
	}

	r.ctrl.Update(0.25, sprintForward)
	st = r.ctrl.State()
	if !st.Exhausted() || st.Stamina != 0 {
		t.Fatalf("stamina=%v exhausted=%t, want 0/true", st.Stamina, st.Exhausted())
	}
	if !r.breathing.playing || r.breathing.clip != "heavy" || !r.breathing.loop {
		t.Fatalf("breathing = %+v, want heavy clip looping", r.breathing)
	}
	if !r.post.blur {
		t.Fatalf("motion blur not enabled on exhaustion")
	}
	if !st.SwayActive {
		t.Fatalf("fatigue sway not active on exhaustion")
	}
	if r.count(event.EventExhausted) != 1 {
		t.Fatalf("exhausted events = %d, want 1", r.count(event.EventExhausted))
	}
}

func TestStamina_FullRecoveryEndsExhaustion(t *testing.T) {
	r := newRig(t, staminaSettings())
	run(r.ctrl, 20, 0.25, sprintForward)
	if !r.ctrl.State().Exhausted() {
		t.Fatalf("setup: not exhausted")
	}

	// Holding sprint while exhausted must not drain or sprint.
	run(r.ctrl, 39, 0.25, sprintForward)
	st := r.ctrl.State()
	approxEqual(t, st.Stamina, 4.875, 1e-9, "stamina after 9.75s")
	if !st.Exhausted() || st.Sprinting {
		t.Fatalf("exhausted=%t sprinting=%t before full recovery", st.Exhausted(), st.Sprinting)
	}

	r.ctrl.Update(0.25, input.Frame{})
	st = r.ctrl.State()
	if st.Exhausted() || st.Stamina != 5 {
		t.Fatalf("stamina=%v exhausted=%t, want 5/false", st.Stamina, st.Exhausted())
	}
	if r.breathing.playing || r.breathing.stops != 1 {
		t.Fatalf("breathing playing=%t stops=%d, want stopped once", r.breathing.playing, r.breathing.stops)
	}
	if len(r.breathing.oneShots) != 1 || r.breathing.oneShots[0] != "light" {
		t.Fatalf("recovery one-shots = %v, want [light]", r.breathing.oneShots)
	}
	if r.post.blur || st.SwayActive {
		t.Fatalf("fatigue effects still on after recovery")
	}
	if r.count(event.EventRecovered) != 1 {
		t.Fatalf("recovered events = %d, want 1", r.count(event.EventRecovered))
	}
}

func TestStamina_SixtyHertzReachesBounds(t *testing.T) {
	r := newRig(t, staminaSettings())
	const dt = 1.0 / 60

	run(r.ctrl, 299, dt, sprintForward)
	if r.ctrl.State().Exhausted() {
		t.Fatalf("exhausted before 5s of sprinting")
	}
	r.ctrl.Update(dt, sprintForward)
	st := r.ctrl.State()
	if !st.Exhausted() || st.Stamina != 0 {
		t.Fatalf("after 300 frames: stamina=%v exhausted=%t, want 0/true", st.Stamina, st.Exhausted())
	}

	run(r.ctrl, 599, dt, input.Frame{})
	if !r.ctrl.State().Exhausted() {
		t.Fatalf("recovered before 10s of rest")
	}
	r.ctrl.Update(dt, input.Frame{})
	st = r.ctrl.State()
	if st.Exhausted() || st.Stamina != 5 {
		t.Fatalf("after 600 frames: stamina=%v exhausted=%t, want 5/false", st.Stamina, st.Exhausted())
	}
	if r.count(event.EventExhausted) != 1 || r.count(event.EventRecovered) != 1 {
		t.Fatalf("exhausted=%d recovered=%d events, want 1/1",
			r.count(event.EventExhausted), r.count(event.EventRecovered))
	}
}

func TestStamina_NoLightBreathWithoutHeavyLoop(t *testing.T) {
	s := staminaSettings()
	s.Breathing.HeavyClip = ""
	r := newRig(t, s)

	run(r.ctrl, 20, 0.25, sprintForward)
	run(r.ctrl, 40, 0.25, input.Frame{})
	if r.ctrl.State().Exhausted() {
		t.Fatalf("setup: still exhausted")
	}
	if r.breathing.plays != 0 || r.breathing.stops != 0 || len(r.breathing.oneShots) != 0 {
		t.Fatalf("breathing plays=%d stops=%d one-shots=%v, want silence",
			r.breathing.plays, r.breathing.stops, r.breathing.oneShots)
	}
}

func TestStamina_StaysInBoundsAndFlipsOnlyAtLimits(t *testing.T) {
	s := staminaSettings()
	s.Stamina.DrainRate = 4
	s.Stamina.RecoveryRate = 2
	r := newRig(t, s)
	rng := rand.New(rand.NewPCG(7, 11))

	prev := r.ctrl.State()
	for i := 0; i < 5000; i++ {
		f := input.Frame{
			MoveX:  rng.Float64()*2 - 1,
			MoveZ:  rng.Float64()*2 - 1,
			Sprint: true,
		}
		r.ctrl.Update(0.001+rng.Float64()*0.1, f)
		st := r.ctrl.State()

		if st.Stamina < 0 || st.Stamina > s.Stamina.Max {
			t.Fatalf("frame %d: stamina %v outside [0, %v]", i, st.Stamina, s.Stamina.Max)
		}
		if !prev.Exhausted() && st.Exhausted() && st.Stamina != 0 {
			t.Fatalf("frame %d: exhausted at stamina %v", i, st.Stamina)
		}
		if prev.Exhausted() && !st.Exhausted() && st.Stamina != s.Stamina.Max {
			t.Fatalf("frame %d: recovered at stamina %v", i, st.Stamina)
		}
		prev = st
	}
	if r.count(event.EventExhausted) == 0 {
		t.Fatalf("random run never exhausted; test is not exercising the transition")
	}
}

func TestSetStamina_Clamps(t *testing.T) {
	r := newRig(t, staminaSettings())
	r.ctrl.Start()

	r.ctrl.SetStamina(-3)
	if got := r.ctrl.State().Stamina; got != 0 {
		t.Fatalf("stamina = %v, want 0", got)
	}
	r.ctrl.SetStamina(99)
	if got := r.ctrl.State().Stamina; got != 5 {
		t.Fatalf("stamina = %v, want 5", got)
	}
}

func TestLook_PitchClampedYawUnbounded(t *testing.T) {
	s := DefaultSettings()
	s.Look.Sensitivity = 0.5
	s.Look.VerticalLimit = 80
	r := newRig(t, s)

	run(r.ctrl, 10, 0.016, input.Frame{MouseDX: 100, MouseDY: -1000})
	st := r.ctrl.State()
	if st.Pitch != 80 {
		t.Fatalf("pitch = %v, want 80", st.Pitch)
	}
	approxEqual(t, st.Yaw, 500, 1e-9, "yaw")
	approxEqual(t, r.mover.yaw, 500, 1e-9, "body yaw")
	want := mgl64.QuatRotate(mgl64.DegToRad(80), mgl64.Vec3{1, 0, 0})
	if !r.camera.rot.ApproxEqual(want) {
		t.Fatalf("camera rotation = %v, want %v", r.camera.rot, want)
	}

	run(r.ctrl, 10, 0.016, input.Frame{MouseDY: 5000})
	if got := r.ctrl.State().Pitch; got != -80 {
		t.Fatalf("pitch = %v, want -80", got)
	}
}

func TestLook_InvertY(t *testing.T) {
	s := DefaultSettings()
	s.Look.Sensitivity = 1
	s.Look.InvertY = true
	r := newRig(t, s)

	r.ctrl.Update(0.016, input.Frame{MouseDY: 10})
	if got := r.ctrl.State().Pitch; got != 10 {
		t.Fatalf("pitch = %v, want 10", got)
	}
}

func TestStance_CrouchToggleOnPress(t *testing.T) {
	r := newRig(t, DefaultSettings())
	var crouchKey input.Edge

	frame := func(held bool) input.Frame {
		return input.Frame{CrouchPressed: crouchKey.Pressed(held)}
	}

	for i := 0; i < 5; i++ {
		r.ctrl.Update(0.016, frame(true))
	}
	approxEqual(t, r.mover.height, 1.2, 1e-9, "height while crouch held")
	if !r.ctrl.State().Crouching {
		t.Fatalf("not crouching after press")
	}

	r.ctrl.Update(0.016, frame(false))
	r.ctrl.Update(0.016, frame(true))
	approxEqual(t, r.mover.height, 1.8, 1e-9, "height after second press")
	if r.ctrl.State().Crouching {
		t.Fatalf("still crouching after second press")
	}
	if r.count(event.EventStanceChanged) != 2 {
		t.Fatalf("stance events = %d, want 2", r.count(event.EventStanceChanged))
	}
}

func TestStance_CeilingKeepsCrouch(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.ctrl.Update(0.016, input.Frame{CrouchPressed: true})
	r.mover.headroomBlock = true

	r.ctrl.Update(0.016, input.Frame{CrouchPressed: true})
	if !r.ctrl.State().Crouching {
		t.Fatalf("stood up under a ceiling")
	}
	approxEqual(t, r.mover.height, 1.2, 1e-9, "height")

	r.ctrl.Update(0.016, sprintForward)
	st := r.ctrl.State()
	if st.Sprinting || st.Stance != StanceCrouching {
		t.Fatalf("sprinting=%t stance=%v under a ceiling, want crouching", st.Sprinting, st.Stance)
	}
}

func TestStance_CrouchHoldsWhileSprintHeld(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.ctrl.Update(0.016, input.Frame{CrouchPressed: true})

	run(r.ctrl, 10, 0.016, sprintForward)
	st := r.ctrl.State()
	if !st.Crouching || st.Sprinting || st.Stance != StanceCrouching {
		t.Fatalf("crouching=%t sprinting=%t stance=%v, want crouching", st.Crouching, st.Sprinting, st.Stance)
	}
	approxEqual(t, r.mover.height, 1.2, 1e-9, "height while crouched")
	if r.count(event.EventStanceChanged) != 1 {
		t.Fatalf("stance events = %d, want 1", r.count(event.EventStanceChanged))
	}
}

func TestStance_CrouchPressWhileSprinting(t *testing.T) {
	r := newRig(t, DefaultSettings())
	run(r.ctrl, 10, 0.016, sprintForward)
	if !r.ctrl.State().Sprinting {
		t.Fatalf("setup: not sprinting")
	}

	f := sprintForward
	f.CrouchPressed = true
	r.ctrl.Update(0.016, f)
	st := r.ctrl.State()
	if !st.Crouching || st.Sprinting || st.Stance != StanceCrouching {
		t.Fatalf("crouching=%t sprinting=%t stance=%v, want crouching", st.Crouching, st.Sprinting, st.Stance)
	}
	approxEqual(t, r.mover.height, 1.2, 1e-9, "height")
	if r.count(event.EventStanceChanged) != 1 {
		t.Fatalf("stance events = %d, want 1", r.count(event.EventStanceChanged))
	}

	// Releasing crouch with another press stands up and allows sprinting again.
	r.ctrl.Update(0.016, f)
	r.ctrl.Update(0.016, sprintForward)
	st = r.ctrl.State()
	if st.Crouching || !st.Sprinting {
		t.Fatalf("crouching=%t sprinting=%t after second press, want sprinting", st.Crouching, st.Sprinting)
	}
	approxEqual(t, r.mover.height, 1.8, 1e-9, "height after standing")
}

func TestLocomotion_SprintNeedsForwardInput(t *testing.T) {
	r := newRig(t, DefaultSettings())

	r.ctrl.Update(0.016, input.Frame{MoveX: 1, Sprint: true})
	if r.ctrl.State().Sprinting {
		t.Fatalf("sprinting while strafing")
	}
	r.ctrl.Update(0.016, input.Frame{MoveZ: -1, Sprint: true})
	if r.ctrl.State().Sprinting {
		t.Fatalf("sprinting while backing up")
	}
	r.ctrl.Update(0.016, sprintForward)
	if !r.ctrl.State().Sprinting {
		t.Fatalf("not sprinting with forward input")
	}
}

func TestLocomotion_AccelerationAndDeceleration(t *testing.T) {
	r := newRig(t, DefaultSettings())
	dt := 0.1

	r.ctrl.Update(dt, input.Frame{MoveZ: 1})
	want := 2 * (1 - math.Exp(-10*dt))
	approxEqual(t, r.ctrl.State().Velocity.Z(), want, 1e-9, "velocity.z after accel")

	r.ctrl.Update(dt, input.Frame{})
	want *= math.Exp(-15 * dt)
	approxEqual(t, r.ctrl.State().Velocity.Z(), want, 1e-9, "velocity.z after decel")
}

func TestLocomotion_DirectionFollowsBodyYaw(t *testing.T) {
	s := DefaultSettings()
	s.Look.Sensitivity = 1
	r := newRig(t, s)
	r.ctrl.Update(0.016, input.Frame{MouseDX: 90})

	run(r.ctrl, 200, 0.05, input.Frame{MoveZ: 1})
	v := r.ctrl.State().Velocity
	approxEqual(t, v.X(), 2, 1e-6, "velocity.x")
	approxEqual(t, v.Z(), 0, 1e-6, "velocity.z")
	if r.mover.pos.X() <= 0 {
		t.Fatalf("body did not move along +X: %v", r.mover.pos)
	}
}

func TestLocomotion_DiagonalInputIsNormalized(t *testing.T) {
	r := newRig(t, DefaultSettings())
	run(r.ctrl, 200, 0.05, input.Frame{MoveX: 1, MoveZ: 1})
	approxEqual(t, r.ctrl.State().Velocity.Len(), 2, 1e-6, "speed")
}

func TestLocomotion_GravityAndJump(t *testing.T) {
	s := DefaultSettings()
	r := newRig(t, s)

	r.ctrl.Update(0.1, input.Frame{})
	approxEqual(t, r.ctrl.State().VerticalSpeed, -2, 1e-9, "grounded stick speed")

	r.ctrl.Update(0.1, input.Frame{JumpPressed: true})
	approxEqual(t, r.ctrl.State().VerticalSpeed, math.Sqrt(2*9.81), 1e-9, "jump speed")

	r.mover.grounded = false
	r.ctrl.Update(0.1, input.Frame{})
	approxEqual(t, r.ctrl.State().VerticalSpeed, math.Sqrt(2*9.81)-0.981, 1e-9, "airborne speed")

	run(r.ctrl, 10, 0.1, input.Frame{})
	r.mover.grounded = true
	r.ctrl.Update(0.1, input.Frame{})
	if r.count(event.EventLanded) != 1 {
		t.Fatalf("landed events = %d, want 1", r.count(event.EventLanded))
	}
	approxEqual(t, r.ctrl.State().VerticalSpeed, -2, 1e-9, "speed after landing")
}

func TestLocomotion_JumpDisabled(t *testing.T) {
	s := DefaultSettings()
	s.Movement.JumpHeight = 0
	r := newRig(t, s)

	r.ctrl.Update(0.1, input.Frame{JumpPressed: true})
	if r.ctrl.State().VerticalSpeed > 0 {
		t.Fatalf("jumped with jump height 0")
	}
}

func TestFootsteps_OneCuePerInterval(t *testing.T) {
	s := DefaultSettings()
	s.Footsteps.WalkClips = []string{"walk"}
	r := newRig(t, s)

	run(r.ctrl, 3, 0.125, input.Frame{MoveZ: 1})
	if len(r.footsteps.oneShots) != 0 {
		t.Fatalf("footsteps before interval: %v", r.footsteps.oneShots)
	}
	r.ctrl.Update(0.125, input.Frame{MoveZ: 1})
	if len(r.footsteps.oneShots) != 1 || r.footsteps.oneShots[0] != "walk" {
		t.Fatalf("footsteps = %v, want [walk]", r.footsteps.oneShots)
	}
	if got := r.ctrl.State().FootstepTimer; got != 0 {
		t.Fatalf("footstep timer = %v, want 0", got)
	}
	if r.count(event.EventFootstep) != 1 {
		t.Fatalf("footstep events = %d, want 1", r.count(event.EventFootstep))
	}
}

func TestFootsteps_StanceScalesIntervalAndClipSet(t *testing.T) {
	s := DefaultSettings()
	s.Footsteps.WalkClips = []string{"walk"}
	s.Footsteps.RunClips = []string{"run-a", "run-b"}
	s.Footsteps.CrouchClips = []string{"crouch"}

	r := newRig(t, s)
	run(r.ctrl, 3, 0.125, sprintForward)
	if len(r.footsteps.oneShots) != 1 {
		t.Fatalf("sprint footsteps after 0.375s = %d, want 1", len(r.footsteps.oneShots))
	}
	if clip := r.footsteps.oneShots[0]; clip != "run-a" && clip != "run-b" {
		t.Fatalf("sprint clip = %q, want a run clip", clip)
	}

	r = newRig(t, s)
	r.ctrl.Update(0.125, input.Frame{CrouchPressed: true, MoveZ: 1})
	run(r.ctrl, 4, 0.125, input.Frame{MoveZ: 1})
	if len(r.footsteps.oneShots) != 0 {
		t.Fatalf("crouch footsteps after 0.625s = %v, want none", r.footsteps.oneShots)
	}
	r.ctrl.Update(0.125, input.Frame{MoveZ: 1})
	if len(r.footsteps.oneShots) != 1 || r.footsteps.oneShots[0] != "crouch" {
		t.Fatalf("crouch footsteps = %v, want [crouch]", r.footsteps.oneShots)
	}
}

func TestFootsteps_EmptySetStillResetsTimer(t *testing.T) {
	r := newRig(t, DefaultSettings())
	run(r.ctrl, 4, 0.125, input.Frame{MoveZ: 1})
	if len(r.footsteps.oneShots) != 0 {
		t.Fatalf("played %v with no clips", r.footsteps.oneShots)
	}
	if got := r.ctrl.State().FootstepTimer; got != 0 {
		t.Fatalf("footstep timer = %v, want 0", got)
	}
}

func TestFootsteps_SilentWhileAirborne(t *testing.T) {
	s := DefaultSettings()
	s.Footsteps.WalkClips = []string{"walk"}
	r := newRig(t, s)
	r.mover.grounded = false

	run(r.ctrl, 20, 0.125, input.Frame{MoveZ: 1})
	if len(r.footsteps.oneShots) != 0 || r.ctrl.State().FootstepTimer != 0 {
		t.Fatalf("footsteps %v timer %v while airborne", r.footsteps.oneShots, r.ctrl.State().FootstepTimer)
	}
}

func TestHeadBob_OscillatesWhileMovingAndSettles(t *testing.T) {
	s := DefaultSettings()
	s.HeadBob.Frequency = 10
	s.HeadBob.Amplitude = 0.1
	r := newRig(t, s)

	run(r.ctrl, 5, 0.02, input.Frame{MoveZ: 1})
	st := r.ctrl.State()
	approxEqual(t, st.HeadBobTimer, 1.0, 1e-9, "bob phase")
	approxEqual(t, st.BobOffset, 0.1*math.Sin(1.0), 1e-9, "bob offset")
	approxEqual(t, r.camera.pos.Y(), 1.6+0.1*math.Sin(1.0), 1e-9, "camera y")

	run(r.ctrl, 300, 0.02, input.Frame{})
	if math.Abs(r.ctrl.State().BobOffset) > 1e-4 {
		t.Fatalf("bob offset = %v after stopping, want ~0", r.ctrl.State().BobOffset)
	}
	approxEqual(t, r.camera.pos.Y(), 1.6, 1e-4, "camera y at rest")
}

func TestHeadBob_CrouchLowersCamera(t *testing.T) {
	s := DefaultSettings()
	s.HeadBob.Enabled = false
	r := newRig(t, s)

	r.ctrl.Update(0.016, input.Frame{CrouchPressed: true})
	approxEqual(t, r.camera.pos.Y(), 1.6-0.6, 1e-9, "crouched camera y")
}

func TestFatigue_SwayAndVignette(t *testing.T) {
	r := newRig(t, staminaSettings())

	run(r.ctrl, 10, 0.25, input.Frame{})
	if a := r.overlay.last().A; a != 0 {
		t.Fatalf("vignette alpha = %d while rested, want 0", a)
	}

	run(r.ctrl, 20, 0.25, sprintForward)
	run(r.ctrl, 8, 0.25, input.Frame{})
	st := r.ctrl.State()
	if !st.Exhausted() {
		t.Fatalf("setup: not exhausted")
	}
	if st.VignetteAlpha <= 0.4 || st.VignetteAlpha > 0.5 {
		t.Fatalf("vignette alpha = %v, want approaching 0.5", st.VignetteAlpha)
	}
	if a := r.overlay.last().A; a == 0 {
		t.Fatalf("overlay alpha not written")
	}
	if st.SwayOffset == 0 && st.SwayPhase == 0 {
		t.Fatalf("sway did not advance while exhausted")
	}
	if math.Abs(st.SwayOffset) > 0.05 {
		t.Fatalf("sway offset %v exceeds intensity", st.SwayOffset)
	}
}

func TestUpdate_OptionalCollaboratorsMayBeNil(t *testing.T) {
	s := staminaSettings()
	s.Footsteps.WalkClips = []string{"walk"}
	mover := &fakeMover{height: 1.8, grounded: true}
	ctrl, err := New(s, Deps{Mover: mover, Camera: &fakeCamera{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	run(ctrl, 40, 0.25, sprintForward)
	run(ctrl, 60, 0.25, input.Frame{MoveZ: 1, CrouchPressed: true})
	if ctrl.State().Exhausted() {
		t.Fatalf("still exhausted after recovery window")
	}
}

func TestPlayerState_Summary(t *testing.T) {
	st := PlayerState{
		Position:     mgl64.Vec3{1, 0, 2},
		BodyVelocity: mgl64.Vec3{3, -1, 4},
		Stance:       StanceSprinting,
		Stamina:      2.5,
		Yaw:          90,
		Grounded:     true,
	}
	want := "sprinting/normal stamina=2.50 pos=(1.00, 0.00, 2.00) speed=5.00 yaw=90.0 pitch=0.0 grounded=true"
	if got := st.Summary(); got != want {
		t.Fatalf("Summary() = %q, want %q", got, want)
	}
}
