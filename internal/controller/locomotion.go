package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
	"github.com/Versifine/stride/internal/physics"
)

var (
	localForward = mgl64.Vec3{0, 0, 1}
	localRight   = mgl64.Vec3{1, 0, 0}
)

func (c *Controller) updateLocomotion(dt float64, frame input.Frame) {
	s := &c.state
	m := c.settings.Movement

	s.Sprinting = !s.Crouching && c.sprintRequested(frame)
	speed := m.WalkSpeed
	switch {
	case s.Sprinting:
		speed = m.SprintSpeed
		s.Stance = StanceSprinting
	case s.Crouching:
		speed = m.CrouchSpeed
		s.Stance = StanceCrouching
	default:
		s.Stance = StanceStanding
	}

	target := c.desiredDirection(frame).Mul(speed)
	rate := m.Deceleration
	if target.Len() > 0 {
		rate = m.Acceleration
	}
	s.Velocity = lerpVec(s.Velocity, target, smoothing(rate, dt))

	fallSpeed := -s.VerticalSpeed
	switch {
	case frame.JumpPressed && s.Grounded && m.JumpHeight > 0:
		s.VerticalSpeed = math.Sqrt(m.JumpHeight * -2 * m.Gravity)
	case s.Grounded && s.VerticalSpeed <= 0:
		s.VerticalSpeed = -m.GroundStickSpeed
	default:
		s.VerticalSpeed += m.Gravity * dt
	}

	mover := c.deps.Mover
	before := mover.Position()
	flags := mover.Move(s.Velocity.Add(mgl64.Vec3{0, s.VerticalSpeed, 0}).Mul(dt))
	s.Position = mover.Position()
	s.BodyVelocity = s.Position.Sub(before).Mul(1 / dt)
	s.Grounded = mover.Grounded()
	s.Moving = physics.HorizontalLen(s.BodyVelocity) > m.MovingThreshold

	if flags.Has(physics.CollidedAbove) && s.VerticalSpeed > 0 {
		s.VerticalSpeed = 0
	}
	if !c.wasGrounded && s.Grounded {
		c.publish(event.EventLanded, event.LandedEvent{FallSpeed: fallSpeed})
		s.VerticalSpeed = -m.GroundStickSpeed
	}
	c.wasGrounded = s.Grounded
}

// desiredDirection is the normalized horizontal input direction in world
// space, built from the body's right and forward axes.
func (c *Controller) desiredDirection(frame input.Frame) mgl64.Vec3 {
	rot := c.deps.Mover.Orientation()
	dir := rot.Rotate(localRight).Mul(frame.MoveX).Add(rot.Rotate(localForward).Mul(frame.MoveZ))
	dir[1] = 0
	if dir.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return dir.Normalize()
}
