// Package ebiten reads keyboard and mouse state from an ebiten window.
package ebiten

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Versifine/stride/internal/input"
)

// Keyboard implements input.Device on ebiten's polled input state.
type Keyboard struct {
	keys map[string]ebiten.Key
}

// NewKeyboard resolves every bound key name up front and fails on names
// ebiten does not know.
func NewKeyboard(b input.Bindings) (*Keyboard, error) {
	k := &Keyboard{keys: make(map[string]ebiten.Key)}
	for _, name := range []string{b.Forward, b.Back, b.Left, b.Right, b.Sprint, b.Crouch, b.Jump} {
		if name == "" {
			continue
		}
		key, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		k.keys[name] = key
	}
	return k, nil
}

func (k *Keyboard) IsKeyPressed(name string) bool {
	key, ok := k.keys[name]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

func (k *Keyboard) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// ParseKey maps a key name such as "ShiftLeft" to an ebiten key.
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return key, nil
}

// Cursor captures the mouse pointer for mouse look.
type Cursor struct{}

func (Cursor) Lock() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	slog.Debug("Cursor captured")
}

// Release shows the pointer again.
func (Cursor) Release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
