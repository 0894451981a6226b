// Package input turns device state into per-frame controller input.
package input

import "math"

// Frame is one frame of player input. MoveX is strafe (+right), MoveZ is
// forward (+forward). Mouse deltas are in device counts since the last frame.
type Frame struct {
	MoveX   float64
	MoveZ   float64
	MouseDX float64
	MouseDY float64

	Sprint        bool
	CrouchPressed bool
	JumpPressed   bool
}

// Sampler produces the input for the next frame.
type Sampler interface {
	Sample(dt float64) Frame
}

// Edge reports a press only on the frame a held signal goes from up to down.
type Edge struct {
	prev bool
}

func (e *Edge) Pressed(held bool) bool {
	pressed := held && !e.prev
	e.prev = held
	return pressed
}

// Axis smooths a digital direction into an analog value, ramping toward the
// raw target at Sensitivity units/s and back to rest at Gravity units/s.
// With Snap set, reversing direction jumps through zero immediately.
type Axis struct {
	Sensitivity float64
	Gravity     float64
	Snap        bool

	value float64
}

func (a *Axis) Update(raw, dt float64) float64 {
	raw = clampUnit(raw)
	if raw == 0 {
		a.value = moveToward(a.value, 0, a.Gravity*dt)
		return a.value
	}
	if a.Snap && a.value != 0 && math.Signbit(raw) != math.Signbit(a.value) {
		a.value = 0
	}
	a.value = moveToward(a.value, raw, a.Sensitivity*dt)
	return a.value
}

func (a *Axis) Value() float64 {
	return a.value
}

// Digital folds two opposing keys into -1, 0 or 1.
func Digital(positive, negative bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

func moveToward(current, target, maxStep float64) float64 {
	if maxStep <= 0 {
		return target
	}
	if math.Abs(target-current) <= maxStep {
		return target
	}
	if target > current {
		return current + maxStep
	}
	return current - maxStep
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
