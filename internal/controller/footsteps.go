package controller

import "github.com/Versifine/stride/internal/event"

func (c *Controller) updateFootsteps(dt float64) {
	s := &c.state
	if !s.Grounded || !s.Moving {
		return
	}
	s.FootstepTimer += dt

	f := c.settings.Footsteps
	interval := f.Interval
	clips := f.WalkClips
	switch {
	case s.Crouching:
		interval *= f.CrouchScale
		clips = f.CrouchClips
	case s.Sprinting:
		interval /= f.SprintScale
		clips = f.RunClips
	}

	if s.FootstepTimer >= interval {
		c.playFootstep(clips)
		s.FootstepTimer = 0
	}
}

func (c *Controller) playFootstep(clips []string) {
	if len(clips) == 0 || c.deps.Footsteps == nil {
		return
	}
	clip := clips[c.deps.Rand.IntN(len(clips))]
	c.deps.Footsteps.PlayOneShot(clip)
	c.publish(event.EventFootstep, event.FootstepEvent{Stance: c.state.Stance.String(), Clip: clip})
}
