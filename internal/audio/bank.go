// Package audio plays named clips for the controller's footstep and
// breathing sources.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Bank holds decoded clips as 16-bit stereo PCM at the bank's sample rate.
type Bank struct {
	sampleRate int
	clips      map[string][]byte
}

func NewBank(sampleRate int) *Bank {
	return &Bank{sampleRate: sampleRate, clips: make(map[string][]byte)}
}

func (b *Bank) SampleRate() int {
	return b.sampleRate
}

// LoadAll loads every name -> path entry. Names are loaded in sorted order.
func (b *Bank) LoadAll(clips map[string]string) error {
	names := make([]string, 0, len(clips))
	for name := range clips {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := b.Load(name, clips[name]); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes a .wav or .ogg file into the bank.
func (b *Bank) Load(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open clip %s: %w", name, err)
	}
	defer f.Close()

	pcm, err := decode(b.sampleRate, filepath.Ext(path), f)
	if err != nil {
		return fmt.Errorf("decode clip %s: %w", name, err)
	}
	b.clips[name] = pcm
	return nil
}

func (b *Bank) Add(name string, pcm []byte) {
	b.clips[name] = pcm
}

func (b *Bank) PCM(name string) ([]byte, bool) {
	pcm, ok := b.clips[name]
	return pcm, ok
}

func (b *Bank) Len() int {
	return len(b.clips)
}

func decode(sampleRate int, ext string, r io.Reader) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	switch strings.ToLower(ext) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported clip format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
