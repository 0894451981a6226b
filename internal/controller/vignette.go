package controller

import (
	"image/color"
	"math"
)

// updateVignette fades the overlay toward the configured alpha while
// exhausted and back to transparent otherwise.
func (c *Controller) updateVignette(dt float64) {
	if c.deps.Vignette == nil {
		return
	}
	v := c.settings.Vignette
	target := 0.0
	if c.state.Exhausted() {
		target = v.Color.A
	}
	c.state.VignetteAlpha = approach(c.state.VignetteAlpha, target, v.FadeSpeed, dt)
	c.deps.Vignette.SetColor(color.NRGBA{
		R: unitToByte(v.Color.R),
		G: unitToByte(v.Color.G),
		B: unitToByte(v.Color.B),
		A: unitToByte(c.state.VignetteAlpha),
	})
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}
