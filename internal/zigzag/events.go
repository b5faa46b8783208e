package zigzag

import (
	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/entity"
)

// EventKind classifies a simulation event.
type EventKind uint8

const (
	EventModeChanged EventKind = iota
	EventFlip
	EventPlankPlaced
	EventPlankEvicted
	EventPlankRemoved
	EventFallStarted
)

func (k EventKind) String() string {
	switch k {
	case EventModeChanged:
		return "mode_changed"
	case EventFlip:
		return "flip"
	case EventPlankPlaced:
		return "plank_placed"
	case EventPlankEvicted:
		return "plank_evicted"
	case EventPlankRemoved:
		return "plank_removed"
	case EventFallStarted:
		return "fall_started"
	default:
		return "unknown"
	}
}

// Event is emitted synchronously from Update. Handle is set for plank
// events, Mode for mode changes.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Handle entity.Handle
	Mode   core.Mode
}

// EventHandler receives simulation events. It must not call back into the Sim.
type EventHandler func(Event)
