package controller

import (
	"log/slog"

	"github.com/Versifine/stride/internal/event"
)

// staminaSnap is the relative distance from a bound below which stamina is
// treated as sitting on it. Frame deltas like 1/60 never sum to the bound.
const staminaSnap = 1e-9

// updateStamina drains while sprinting and recovers otherwise. Exhaustion
// starts at zero and only ends once stamina is back at max.
func (c *Controller) updateStamina(dt float64) {
	s := &c.state
	st := c.settings.Stamina
	eps := staminaSnap * st.Max

	if s.Sprinting && !s.Exhausted() {
		s.Stamina = s.Stamina - st.DrainRate*dt
		if s.Stamina <= eps {
			s.Stamina = 0
			c.enterExhausted()
		}
		return
	}

	s.Stamina = s.Stamina + st.RecoveryRate*dt
	if s.Stamina >= st.Max-eps {
		s.Stamina = st.Max
	}
	if s.Exhausted() && s.Stamina == st.Max {
		c.exitExhausted()
	}
}

func (c *Controller) enterExhausted() {
	c.state.Fatigue = FatigueExhausted
	c.startBreathing()
	c.setFatigueEffects(true)
	slog.Debug("Stamina exhausted")
	c.publish(event.EventExhausted, event.StaminaEvent{Stamina: c.state.Stamina, Max: c.settings.Stamina.Max})
}

func (c *Controller) exitExhausted() {
	c.state.Fatigue = FatigueNormal
	c.stopBreathing()
	c.setFatigueEffects(false)
	slog.Debug("Stamina recovered")
	c.publish(event.EventRecovered, event.StaminaEvent{Stamina: c.state.Stamina, Max: c.settings.Stamina.Max})
}

func (c *Controller) startBreathing() {
	src := c.deps.Breathing
	clip := c.settings.Breathing.HeavyClip
	if src == nil || clip == "" || src.IsPlaying() {
		return
	}
	src.SetClip(clip)
	src.SetLoop(true)
	src.Play()
}

func (c *Controller) stopBreathing() {
	src := c.deps.Breathing
	if src == nil {
		return
	}
	if !src.IsPlaying() {
		return
	}
	src.Stop()
	if clip := c.settings.Breathing.LightClip; clip != "" {
		src.PlayOneShot(clip)
	}
}

func (c *Controller) setFatigueEffects(enabled bool) {
	if c.deps.PostProcess != nil {
		c.deps.PostProcess.SetMotionBlur(enabled)
	}
	c.state.SwayActive = enabled
}
