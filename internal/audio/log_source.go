package audio

import "log/slog"

// LogSource stands in for a Source when there is no audio device. It keeps
// the play state and logs each cue.
type LogSource struct {
	Name string

	clip    string
	loop    bool
	playing bool
	cues    []string
}

func NewLogSource(name string) *LogSource {
	return &LogSource{Name: name}
}

func (s *LogSource) SetClip(name string) { s.clip = name }
func (s *LogSource) SetLoop(loop bool)   { s.loop = loop }
func (s *LogSource) IsPlaying() bool     { return s.playing }

func (s *LogSource) Play() {
	s.playing = true
	s.cues = append(s.cues, s.clip)
	slog.Debug("Audio play", "source", s.Name, "clip", s.clip, "loop", s.loop)
}

func (s *LogSource) Stop() {
	if s.playing {
		slog.Debug("Audio stop", "source", s.Name, "clip", s.clip)
	}
	s.playing = false
}

func (s *LogSource) PlayOneShot(name string) {
	s.cues = append(s.cues, name)
	slog.Debug("Audio one-shot", "source", s.Name, "clip", name)
}

// Cues lists every clip started so far, in order.
func (s *LogSource) Cues() []string {
	return append([]string(nil), s.cues...)
}
