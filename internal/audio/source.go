package audio

import (
	"bytes"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// NewContext returns the process-wide ebiten audio context, creating it at
// sampleRate on first use.
func NewContext(sampleRate int) *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// Source is one playback channel: a current clip for Play/Stop plus
// fire-and-forget one-shots.
type Source struct {
	name   string
	ctx    *audio.Context
	bank   *Bank
	volume float64

	clip     string
	loop     bool
	player   *audio.Player
	oneShots []*audio.Player
}

func NewSource(name string, ctx *audio.Context, bank *Bank, volume float64) *Source {
	return &Source{name: name, ctx: ctx, bank: bank, volume: volume}
}

func (s *Source) SetClip(name string) {
	if name != s.clip {
		s.Stop()
	}
	s.clip = name
}

func (s *Source) SetLoop(loop bool) {
	s.loop = loop
}

func (s *Source) Play() {
	pcm, ok := s.bank.PCM(s.clip)
	if !ok {
		slog.Warn("Unknown audio clip", "source", s.name, "clip", s.clip)
		return
	}
	s.Stop()

	var p *audio.Player
	if s.loop {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		var err error
		if p, err = s.ctx.NewPlayer(loop); err != nil {
			slog.Error("Failed to create audio player", "source", s.name, "error", err)
			return
		}
	} else {
		p = s.ctx.NewPlayerFromBytes(pcm)
	}
	p.SetVolume(s.volume)
	p.Play()
	s.player = p
}

func (s *Source) Stop() {
	if s.player == nil {
		return
	}
	s.player.Pause()
	if err := s.player.Close(); err != nil {
		slog.Debug("Audio player close failed", "source", s.name, "error", err)
	}
	s.player = nil
}

func (s *Source) IsPlaying() bool {
	return s.player != nil && s.player.IsPlaying()
}

func (s *Source) PlayOneShot(name string) {
	pcm, ok := s.bank.PCM(name)
	if !ok {
		slog.Warn("Unknown audio clip", "source", s.name, "clip", name)
		return
	}
	s.prune()
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
	s.oneShots = append(s.oneShots, p)
}

// prune closes one-shots that have finished.
func (s *Source) prune() {
	live := s.oneShots[:0]
	for _, p := range s.oneShots {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	s.oneShots = live
}
