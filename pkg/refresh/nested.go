package refresh

import "github.com/go-drift/pullrefresh/pkg/gestures"

// nestedContext tracks a nested scroll started by the content.
type nestedContext struct {
	// total is the part of the offset the current nested scroll revealed and
	// can still give back before the content scrolls.
	total  int
	active bool
	// ancestor is true when the layout's own parent joined the session.
	ancestor bool
}

// handleNestedPointer only watches pointers for velocity; the content drives
// scrolling through the NestedScrollParent methods.
func (l *Layout) handleNestedPointer(event gestures.PointerEvent) bool {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		l.beginSession(event)
		return false
	case gestures.PointerPhaseUp:
		if l.session == nil {
			return false
		}
		l.track(event)
		velocity := l.velocity.Velocity()
		l.endSession()
		if l.offset.current > 0 && l.offset.crossed() {
			// The content ends its nested scroll, which triggers the refresh.
			return false
		}
		if l.fling(velocity) {
			l.content.EndDrag()
			return true
		}
		return false
	case gestures.PointerPhaseCancel:
		l.endSession()
		return false
	default:
		l.track(event)
		return false
	}
}

// StartNestedScroll implements NestedScrollParent. A new session interrupts
// a running fling.
func (l *Layout) StartNestedScroll() bool {
	l.flinger.stop()
	l.scroll = nestedContext{
		total:  l.offset.current,
		active: true,
	}
	l.offset.resetRemainder()
	if l.ancestor != nil {
		l.scroll.ancestor = l.ancestor.StartNestedScroll()
	}
	return true
}

// NestedPreScroll implements NestedScrollParent. Scrolling toward the end of
// the content first gives back offset revealed by this nested scroll.
func (l *Layout) NestedPreScroll(dy int) int {
	consumed := 0
	if dy > 0 && l.scroll.total > 0 {
		claim := min(dy, l.scroll.total)
		consumed = -l.offset.move(-claim)
		l.scroll.total = min(l.scroll.total-consumed, l.offset.current)
		l.dragged()
		l.notifyPull()
	}
	if l.scroll.ancestor && dy != consumed {
		consumed += l.ancestor.NestedPreScroll(dy - consumed)
	}
	return consumed
}

// NestedScroll implements NestedScrollParent. Unconsumed scroll toward the
// start of content sitting at its top reveals the header with resistance.
func (l *Layout) NestedScroll(dyConsumed, dyUnconsumed int) int {
	consumed := 0
	if l.scroll.ancestor {
		consumed = l.ancestor.NestedScroll(dyConsumed, dyUnconsumed)
	}
	dy := dyUnconsumed - consumed
	if dy < 0 && !l.content.CanScrollUp() {
		l.scroll.total += l.reveal(float64(-dy))
		consumed += dy
	}
	return consumed
}

// StopNestedScroll implements NestedScrollParent.
func (l *Layout) StopNestedScroll() {
	ancestor := l.scroll.ancestor
	l.scroll = nestedContext{total: l.offset.current}
	defer func() {
		if ancestor {
			l.ancestor.StopNestedScroll()
		}
	}()
	if l.measureQueued && l.session == nil {
		l.Measure()
	}
	if l.IsSettling() {
		return
	}
	switch {
	case l.offset.current > 0 && l.offset.crossed():
		l.settleCrossed()
	case l.offset.current > 0 && !l.refreshing:
		l.animator.toStart()
	default:
		l.settle()
	}
}

// NestedPreFling implements NestedScrollParent.
func (l *Layout) NestedPreFling(velocity float64) bool {
	if l.scroll.ancestor {
		return l.ancestor.NestedPreFling(velocity)
	}
	return false
}

// NestedFling implements NestedScrollParent.
func (l *Layout) NestedFling(velocity float64, consumed bool) bool {
	if l.scroll.ancestor {
		return l.ancestor.NestedFling(velocity, consumed)
	}
	return false
}
