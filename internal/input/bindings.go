package input

// Bindings names the keys for each action. Names follow ebiten's key names
// ("W", "ShiftLeft", "ControlLeft", "Space").
type Bindings struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Sprint  string `yaml:"sprint"`
	Crouch  string `yaml:"crouch"`
	Jump    string `yaml:"jump"`
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward: "W",
		Back:    "S",
		Left:    "A",
		Right:   "D",
		Sprint:  "ShiftLeft",
		Crouch:  "ControlLeft",
		Jump:    "Space",
	}
}

// Settings configures device sampling.
type Settings struct {
	Bindings        Bindings `yaml:"bindings"`
	AxisSensitivity float64  `yaml:"axis_sensitivity"`
	AxisGravity     float64  `yaml:"axis_gravity"`
	AxisSnap        bool     `yaml:"axis_snap"`
}

func DefaultSettings() Settings {
	return Settings{
		Bindings:        DefaultBindings(),
		AxisSensitivity: 3,
		AxisGravity:     3,
		AxisSnap:        true,
	}
}

// NewAxis returns an axis smoother configured from s.
func (s Settings) NewAxis() Axis {
	return Axis{Sensitivity: s.AxisSensitivity, Gravity: s.AxisGravity, Snap: s.AxisSnap}
}
