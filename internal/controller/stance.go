package controller

import (
	"log/slog"

	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
)

// updateStance toggles crouch on a press. A crouched body never sprints, so
// holding sprint does not undo the crouch.
func (c *Controller) updateStance(frame input.Frame) {
	if frame.CrouchPressed {
		if c.state.Crouching {
			c.standUp()
		} else {
			c.crouchDown()
		}
	}
}

func (c *Controller) crouchDown() {
	h := c.settings.Crouch.Height
	c.deps.Mover.SetHeight(h)
	c.state.Crouching = true
	c.publish(event.EventStanceChanged, event.StanceEvent{
		From:   StanceStanding.String(),
		To:     StanceCrouching.String(),
		Height: h,
	})
}

func (c *Controller) standUp() {
	h := c.settings.Crouch.StandingHeight
	if !c.deps.Mover.CanResize(h) {
		slog.Debug("Stand up blocked by ceiling", "height", h)
		return
	}
	c.deps.Mover.SetHeight(h)
	c.state.Crouching = false
	c.publish(event.EventStanceChanged, event.StanceEvent{
		From:   StanceCrouching.String(),
		To:     StanceStanding.String(),
		Height: h,
	})
}

// sprintRequested reports whether the input and fatigue state allow a sprint.
// Sprinting only happens with forward input.
func (c *Controller) sprintRequested(frame input.Frame) bool {
	return frame.Sprint && frame.MoveZ > 0 && !c.state.Exhausted()
}
