package input

// Device is raw keyboard and mouse state, keyed by binding names.
type Device interface {
	IsKeyPressed(key string) bool
	CursorPosition() (x, y int)
}

// DeviceSampler turns polled device state into frames using the configured
// bindings and axis smoothing.
type DeviceSampler struct {
	dev      Device
	bindings Bindings

	x, z   Axis
	crouch Edge
	jump   Edge

	lastX, lastY int
	primed       bool
}

func NewDeviceSampler(dev Device, s Settings) *DeviceSampler {
	return &DeviceSampler{
		dev:      dev,
		bindings: s.Bindings,
		x:        s.NewAxis(),
		z:        s.NewAxis(),
	}
}

// Sample polls the device. The first call only records the cursor, so a
// freshly captured cursor does not produce a jump in the view.
func (s *DeviceSampler) Sample(dt float64) Frame {
	b := s.bindings
	pressed := s.dev.IsKeyPressed

	f := Frame{
		MoveX:         s.x.Update(Digital(pressed(b.Right), pressed(b.Left)), dt),
		MoveZ:         s.z.Update(Digital(pressed(b.Forward), pressed(b.Back)), dt),
		Sprint:        pressed(b.Sprint),
		CrouchPressed: s.crouch.Pressed(pressed(b.Crouch)),
		JumpPressed:   s.jump.Pressed(pressed(b.Jump)),
	}

	cx, cy := s.dev.CursorPosition()
	if s.primed {
		f.MouseDX = float64(cx - s.lastX)
		f.MouseDY = float64(cy - s.lastY)
	}
	s.lastX, s.lastY, s.primed = cx, cy, true
	return f
}
