package refresh

import (
	"math"

	"github.com/go-drift/pullrefresh/pkg/gestures"
)

// gestureSession lives from the first pointer down to the last pointer up.
type gestureSession struct {
	tracker gestures.PointerTracker
	// isDragging is set once the active pointer crossed the touch slop, or at
	// once when the gesture interrupted a fling.
	isDragging bool
	// hasTransferredToContent is set once the layout scrolled the content on
	// the finger's behalf.
	hasTransferredToContent bool
	// suppressedClick is set once the content was told to cancel its press.
	suppressedClick bool
}

// HandlePointer routes a pointer event. It reports whether the layout or
// its content consumed it. Events the layout does not consume are passed to
// the content when it implements PointerHandler.
func (l *Layout) HandlePointer(event gestures.PointerEvent) bool {
	var handled bool
	if l.nested {
		handled = l.handleNestedPointer(event)
	} else {
		handled = l.handleRawPointer(event)
	}
	if handled {
		return true
	}
	return l.content.HandlePointer(event)
}

// beginSession stops any motion before the down is otherwise handled.
func (l *Layout) beginSession(event gestures.PointerEvent) bool {
	wasFlinging := l.flinger.running()
	l.flinger.stop()
	l.animator.stop()
	l.offset.resetRemainder()
	l.velocity.Clear()

	s := &gestureSession{isDragging: wasFlinging}
	if !s.tracker.Down(event) {
		l.session = nil
		return false
	}
	l.session = s
	l.velocity.Add(event.Time, s.tracker.LastY())
	return true
}

// endSession discards the gesture and applies a measurement queued during it.
func (l *Layout) endSession() {
	l.session = nil
	if l.measureQueued {
		l.Measure()
	}
}

// track updates pointer bookkeeping shared by both paths. For moves and ups
// it returns the active pointer; ok is false for stale pointers.
func (l *Layout) track(event gestures.PointerEvent) (p gestures.Pointer, ok bool) {
	s := l.session
	if s == nil {
		return gestures.Pointer{}, false
	}
	switch event.Phase {
	case gestures.PointerPhasePointerDown:
		s.tracker.PointerDown(event)
		l.velocity.Clear()
		return gestures.Pointer{}, false
	case gestures.PointerPhasePointerUp:
		prev := s.tracker.Active()
		s.tracker.PointerUp(event)
		if s.tracker.Active() != prev {
			l.velocity.Clear()
		}
		return gestures.Pointer{}, false
	}
	p, ok = s.tracker.Resolve(event)
	if ok {
		l.velocity.Add(event.Time, p.Y)
	}
	return p, ok
}

func (l *Layout) handleRawPointer(event gestures.PointerEvent) bool {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		l.beginSession(event)
		return false
	case gestures.PointerPhaseMove:
		p, ok := l.track(event)
		if !ok {
			return false
		}
		return l.rawMove(p)
	case gestures.PointerPhaseUp:
		if l.session == nil {
			return false
		}
		l.track(event)
		handled := l.session.suppressedClick
		if !l.session.isDragging {
			l.restore()
		} else if l.release(l.velocity.Velocity()) {
			handled = true
		}
		l.endSession()
		return handled
	case gestures.PointerPhaseCancel:
		if l.session == nil {
			return false
		}
		l.endSession()
		l.restore()
		return false
	default:
		l.track(event)
		return false
	}
}

func (l *Layout) rawMove(p gestures.Pointer) bool {
	s := l.session
	dy := p.Y - s.tracker.LastY()
	if !s.isDragging {
		if math.Abs(dy) < float64(l.config.TouchSlop) {
			return false
		}
		// The move that crosses the slop starts the drag and is not applied.
		s.isDragging = true
		s.tracker.SetLast(p)
		return false
	}
	s.tracker.SetLast(p)

	switch {
	case dy > 0 && !l.content.CanScrollUp():
		l.reveal(dy)
	case dy < 0 && l.offset.current > 0:
		if rest := l.hide(dy); rest < 0 {
			l.content.ScrollBy(-rest)
			s.hasTransferredToContent = true
		}
	case s.suppressedClick:
		// The content's own drag was cancelled; it follows the finger.
		if step := int(math.Round(-dy)); step != 0 {
			l.content.ScrollBy(step)
			s.hasTransferredToContent = true
		}
	default:
		return false
	}
	if !s.suppressedClick {
		s.suppressedClick = true
		l.content.BeginDrag()
	}
	return true
}

// release ends a dragged raw gesture and reports whether the layout handled
// the release.
func (l *Layout) release(velocity float64) bool {
	switch {
	case l.offset.current > 0 && l.offset.crossed():
		l.settleCrossed()
		return true
	case l.fling(velocity):
		l.content.EndDrag()
		return true
	case l.offset.current > 0 && !l.refreshing:
		l.animator.toStart()
		return true
	default:
		l.settle()
		return false
	}
}

// restore returns the offset to a resting position without triggering a
// refresh.
func (l *Layout) restore() {
	switch {
	case l.refreshing && l.offset.current > l.offset.header:
		l.animator.toRefresh()
	case !l.refreshing && l.offset.current > 0:
		l.animator.toStart()
	default:
		l.settle()
	}
}
