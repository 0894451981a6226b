package controller

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/input"
)

var pitchAxis = mgl64.Vec3{1, 0, 0}

// updateLook turns the body by the horizontal mouse delta and tilts only the
// camera by the vertical one. Positive pitch looks down.
func (c *Controller) updateLook(frame input.Frame) {
	l := c.settings.Look
	s := &c.state

	yaw := frame.MouseDX * l.Sensitivity
	if yaw != 0 {
		c.deps.Mover.Rotate(yaw)
		s.Yaw += yaw
	}

	dy := frame.MouseDY
	if l.InvertY {
		dy = -dy
	}
	s.Pitch = clamp(s.Pitch-dy*l.Sensitivity, -l.VerticalLimit, l.VerticalLimit)
	c.deps.Camera.SetLocalRotation(mgl64.QuatRotate(mgl64.DegToRad(s.Pitch), pitchAxis))
}
