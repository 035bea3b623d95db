package testing

import (
	"github.com/go-drift/pullrefresh/pkg/gestures"
)

// PointerTarget receives pointer events. The refresh layout and the
// reference content scroller both implement it.
type PointerTarget interface {
	HandlePointer(event gestures.PointerEvent) bool
}

// Finger simulates one pointer (plus optional extra pointers) against a
// target. Each event first advances the fake clock by one frame and pumps,
// mirroring a host that delivers at most one input event per frame.
type Finger struct {
	tester  *FrameTester
	target  PointerTarget
	id      int64
	x, y    float64
	down    bool
	extra   []gestures.Pointer
	handled []bool
}

// Touch returns a finger bound to target.
func (t *FrameTester) Touch(target PointerTarget) *Finger {
	return &Finger{tester: t, target: target, id: t.allocPointerID()}
}

// ID returns the finger's pointer id.
func (f *Finger) ID() int64 { return f.id }

// Y returns the finger's current vertical position.
func (f *Finger) Y() float64 { return f.y }

// Handled returns the target's return value for every event sent so far.
func (f *Finger) Handled() []bool { return f.handled }

// Down touches down at (x, y) without advancing time.
func (f *Finger) Down(x, y float64) bool {
	f.x, f.y = x, y
	f.down = true
	f.extra = nil
	return f.send(gestures.PointerPhaseDown, f.id, false)
}

// MoveBy advances one frame and moves the finger vertically by dy.
func (f *Finger) MoveBy(dy float64) bool {
	f.y += dy
	return f.send(gestures.PointerPhaseMove, f.id, true)
}

// MoveTo advances one frame and moves the finger to y.
func (f *Finger) MoveTo(y float64) bool {
	f.y = y
	return f.send(gestures.PointerPhaseMove, f.id, true)
}

// Hold advances one frame and repeats the current position, so a later Up
// reports no velocity from earlier motion once the horizon has passed.
func (f *Finger) Hold(frames int) {
	for range frames {
		f.send(gestures.PointerPhaseMove, f.id, true)
	}
}

// Up advances one frame and lifts the finger.
func (f *Finger) Up() bool {
	handled := f.send(gestures.PointerPhaseUp, f.id, true)
	f.down = false
	return handled
}

// Cancel advances one frame and cancels the gesture.
func (f *Finger) Cancel() bool {
	handled := f.send(gestures.PointerPhaseCancel, f.id, true)
	f.down = false
	return handled
}

// AddPointer puts a second pointer down at (x, y) and returns its id.
func (f *Finger) AddPointer(x, y float64) int64 {
	p := gestures.Pointer{ID: f.tester.allocPointerID(), X: x, Y: y}
	f.extra = append(f.extra, p)
	f.send(gestures.PointerPhasePointerDown, p.ID, true)
	return p.ID
}

// LiftPrimary lifts the finger's own pointer while extra pointers remain
// down. The finger then follows the first extra pointer.
func (f *Finger) LiftPrimary() {
	f.send(gestures.PointerPhasePointerUp, f.id, true)
	if len(f.extra) == 0 {
		return
	}
	next := f.extra[0]
	f.extra = f.extra[1:]
	f.id, f.x, f.y = next.ID, next.X, next.Y
}

func (f *Finger) pointers() []gestures.Pointer {
	pointers := make([]gestures.Pointer, 0, 1+len(f.extra))
	pointers = append(pointers, gestures.Pointer{ID: f.id, X: f.x, Y: f.y})
	return append(pointers, f.extra...)
}

func (f *Finger) send(phase gestures.PointerPhase, changed int64, advance bool) bool {
	if advance {
		f.tester.PumpFrames(1)
	}
	handled := f.target.HandlePointer(gestures.PointerEvent{
		Phase:     phase,
		PointerID: changed,
		Pointers:  f.pointers(),
		Time:      f.tester.clock.Since(),
	})
	f.handled = append(f.handled, handled)
	return handled
}
