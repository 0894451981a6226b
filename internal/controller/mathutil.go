package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// smoothing is the interpolation factor that moves a value a fraction of the
// way toward its target at rate r over dt, independent of frame rate.
func smoothing(rate, dt float64) float64 {
	if rate <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

func approach(current, target, rate, dt float64) float64 {
	return current + (target-current)*smoothing(rate, dt)
}

func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
