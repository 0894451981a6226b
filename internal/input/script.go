package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step holds a set of inputs for a run of frames. Crouch and Jump are held
// states; the script reports a press only on the first frame they are held.
type Step struct {
	Frames  int     `yaml:"frames"`
	MoveX   float64 `yaml:"move_x"`
	MoveZ   float64 `yaml:"move_z"`
	MouseDX float64 `yaml:"mouse_dx"`
	MouseDY float64 `yaml:"mouse_dy"`
	Sprint  bool    `yaml:"sprint"`
	Crouch  bool    `yaml:"crouch"`
	Jump    bool    `yaml:"jump"`
}

// Script replays recorded steps frame by frame. It implements Sampler.
type Script struct {
	DT    float64 `yaml:"dt"`
	Steps []Step  `yaml:"steps"`

	step   int
	frame  int
	crouch Edge
	jump   Edge
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) Validate() error {
	if s.DT <= 0 {
		return fmt.Errorf("script dt must be > 0, got %v", s.DT)
	}
	for i, st := range s.Steps {
		if st.Frames <= 0 {
			return fmt.Errorf("script step %d: frames must be > 0, got %d", i, st.Frames)
		}
	}
	return nil
}

// Len is the total number of frames in the script.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

func (s *Script) Done() bool {
	return s.step >= len(s.Steps)
}

// Sample returns the next scripted frame, or an idle frame once the script is
// exhausted.
func (s *Script) Sample(float64) Frame {
	if s.Done() {
		return Frame{
			CrouchPressed: s.crouch.Pressed(false),
			JumpPressed:   s.jump.Pressed(false),
		}
	}
	st := s.Steps[s.step]
	s.frame++
	if s.frame >= st.Frames {
		s.step++
		s.frame = 0
	}
	return Frame{
		MoveX:         clampUnit(st.MoveX),
		MoveZ:         clampUnit(st.MoveZ),
		MouseDX:       st.MouseDX,
		MouseDY:       st.MouseDY,
		Sprint:        st.Sprint,
		CrouchPressed: s.crouch.Pressed(st.Crouch),
		JumpPressed:   s.jump.Pressed(st.Jump),
	}
}
