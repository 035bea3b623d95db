package gestures

// InvalidPointer is the active id when no pointer is tracked.
const InvalidPointer int64 = -1

// PointerTracker follows the single active pointer of a multi-touch sequence.
//
// The zero value tracks nothing; call Down to begin.
type PointerTracker struct {
	active   int64
	tracking bool
	lastX    float64
	lastY    float64
}

// Down anchors the tracker to the pointer that went down. It reports false
// when the event does not carry that pointer.
func (t *PointerTracker) Down(event PointerEvent) bool {
	t.Reset()
	p, ok := event.Find(event.PointerID)
	if !ok {
		if len(event.Pointers) == 0 {
			return false
		}
		p = event.Pointers[0]
	}
	t.anchor(p)
	return true
}

// PointerDown re-anchors to a newly added pointer, so the latest finger
// drives the gesture.
func (t *PointerTracker) PointerDown(event PointerEvent) {
	if p, ok := event.Find(event.PointerID); ok {
		t.anchor(p)
	}
}

// PointerUp handles a non-final pointer lifting. If it was the active one,
// the tracker re-anchors to a remaining pointer.
func (t *PointerTracker) PointerUp(event PointerEvent) {
	if !t.tracking || event.PointerID != t.active {
		return
	}
	for _, p := range event.Pointers {
		if p.ID != event.PointerID {
			t.anchor(p)
			return
		}
	}
	t.Reset()
}

// Resolve returns the active pointer's current position in event. ok is false
// when the pointer is not present, e.g. it already lifted; callers treat the
// event as a no-op.
func (t *PointerTracker) Resolve(event PointerEvent) (p Pointer, ok bool) {
	if !t.tracking {
		return Pointer{}, false
	}
	return event.Find(t.active)
}

// SetLast records p as the last known position of the active pointer.
func (t *PointerTracker) SetLast(p Pointer) {
	t.lastX = p.X
	t.lastY = p.Y
}

// Active returns the active pointer id, or InvalidPointer.
func (t *PointerTracker) Active() int64 {
	if !t.tracking {
		return InvalidPointer
	}
	return t.active
}

// LastY returns the last known vertical position.
func (t *PointerTracker) LastY() float64 {
	return t.lastY
}

// LastX returns the last known horizontal position.
func (t *PointerTracker) LastX() float64 {
	return t.lastX
}

// Reset stops tracking.
func (t *PointerTracker) Reset() {
	*t = PointerTracker{}
}

func (t *PointerTracker) anchor(p Pointer) {
	t.active = p.ID
	t.tracking = true
	t.lastX = p.X
	t.lastY = p.Y
}
