package event

import "fmt"

const (
	EventExhausted     = "stamina.exhausted"
	EventRecovered     = "stamina.recovered"
	EventStanceChanged = "stance.changed"
	EventFootstep      = "footstep"
	EventLanded        = "landed"
)

// All lists every event the controller publishes.
var All = []string{EventExhausted, EventRecovered, EventStanceChanged, EventFootstep, EventLanded}

type StaminaEvent struct {
	Stamina float64
	Max     float64
}

type StanceEvent struct {
	From   string
	To     string
	Height float64
}

type FootstepEvent struct {
	Stance string
	Clip   string
}

type LandedEvent struct {
	FallSpeed float64
}

// Describe renders an event as one short line for logs and the HUD.
func Describe(eventName string, evt any) string {
	switch e := evt.(type) {
	case StaminaEvent:
		return fmt.Sprintf("%s stamina=%.2f/%.2f", eventName, e.Stamina, e.Max)
	case StanceEvent:
		return fmt.Sprintf("%s %s -> %s height=%.2f", eventName, e.From, e.To, e.Height)
	case FootstepEvent:
		return fmt.Sprintf("%s stance=%s clip=%s", eventName, e.Stance, e.Clip)
	case LandedEvent:
		return fmt.Sprintf("%s fall_speed=%.2f", eventName, e.FallSpeed)
	default:
		return fmt.Sprintf("%s %v", eventName, evt)
	}
}
