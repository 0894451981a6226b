package render

import (
	"fmt"
	"strings"

	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/event"
)

const hudEventLines = 4

// hud keeps the latest controller events for the on-screen readout.
type hud struct {
	events []string
}

func newHUD(bus *event.Bus) *hud {
	h := &hud{}
	if bus == nil {
		return h
	}
	bus.SubscribeAll(func(name string, evt any) { h.push(event.Describe(name, evt)) })
	return h
}

func (h *hud) push(line string) {
	h.events = append(h.events, line)
	if len(h.events) > hudEventLines {
		h.events = h.events[len(h.events)-hudEventLines:]
	}
}

func (h *hud) text(tps float64, st controller.PlayerState, staminaMax float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  %s\n", tps, staminaBar(st.Stamina, staminaMax, 20))
	b.WriteString(st.Summary())
	b.WriteString("\n")
	for _, line := range h.events {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func staminaBar(v, limit float64, width int) string {
	filled := 0
	if limit > 0 {
		filled = int(v / limit * float64(width))
	}
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
