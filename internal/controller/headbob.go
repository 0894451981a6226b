package controller

import "math"

func (c *Controller) updateHeadBob(dt float64) {
	hb := c.settings.HeadBob
	s := &c.state
	if !hb.Enabled {
		s.BobOffset = 0
		return
	}
	if s.Grounded && s.Moving {
		s.HeadBobTimer += dt * hb.Frequency
		s.BobOffset = math.Sin(s.HeadBobTimer) * hb.Amplitude
		return
	}
	s.BobOffset = approach(s.BobOffset, 0, hb.ReturnSpeed, dt)
}

// updateSway rocks the camera sideways while fatigue effects are active and
// eases it back once they end.
func (c *Controller) updateSway(dt float64) {
	f := c.settings.Fatigue
	s := &c.state
	if s.SwayActive && f.SwayEnabled {
		s.SwayPhase += dt * f.SwayFrequency * 2 * math.Pi
		s.SwayOffset = math.Sin(s.SwayPhase) * f.SwayIntensity
		return
	}
	s.SwayOffset = approach(s.SwayOffset, 0, c.settings.HeadBob.ReturnSpeed, dt)
}
