// Package gestures decodes raw pointer events into the quantities the
// refresh layout arbitrates over: which pointer is active, where it is, and
// how fast it was moving when it lifted.
package gestures

import (
	"fmt"
	"time"
)

// PointerPhase identifies what happened in a PointerEvent.
type PointerPhase int

const (
	// PointerPhaseDown is the first pointer of a gesture touching down.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove reports new positions for the pointers that are down.
	PointerPhaseMove
	// PointerPhaseUp is the last pointer lifting.
	PointerPhaseUp
	// PointerPhaseCancel aborts the gesture.
	PointerPhaseCancel
	// PointerPhasePointerDown is an additional pointer touching down.
	PointerPhasePointerDown
	// PointerPhasePointerUp is a non-final pointer lifting.
	PointerPhasePointerUp
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	case PointerPhasePointerDown:
		return "pointer_down"
	case PointerPhasePointerUp:
		return "pointer_up"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// Pointer is one touch point.
type Pointer struct {
	ID int64
	X  float64
	Y  float64
}

// PointerEvent is a decoded multi-touch event.
type PointerEvent struct {
	Phase PointerPhase
	// PointerID is the pointer whose state changed. Unused for moves.
	PointerID int64
	// Pointers holds every pointer that is down during the event, including
	// the one that is going down or lifting.
	Pointers []Pointer
	// Time is the event timestamp relative to an arbitrary, fixed epoch.
	Time time.Duration
}

// Find returns the pointer with the given id.
func (e PointerEvent) Find(id int64) (Pointer, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}
