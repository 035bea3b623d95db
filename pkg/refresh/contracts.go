package refresh

import "github.com/go-drift/pullrefresh/pkg/gestures"

// Indicator receives refresh lifecycle callbacks. A header view registered
// with SetHeader must implement it.
type Indicator interface {
	// OnPrepare fires once when a gesture starts revealing from zero offset.
	OnPrepare()
	// OnPull fires for every applied offset change during a drag.
	// Implementations debounce their own visual transitions.
	OnPull(willTrigger bool, offset int)
	// OnStart fires when a refresh begins.
	OnStart()
	// OnComplete fires when the caller ends the refresh.
	OnComplete()
}

// View is a measurable header.
type View interface {
	MeasuredHeight() int
}

// Content is the adapter a scrollable content type supplies. Scroll deltas
// are positive toward the end of the content.
type Content interface {
	// CanScrollUp reports whether the content can scroll toward its start,
	// i.e. it is not at its top boundary.
	CanScrollUp() bool
	// CanScrollDown reports whether the content can scroll toward its end.
	CanScrollDown() bool
	// ScrollOffset returns the distance scrolled from the top.
	ScrollOffset() int
	// ScrollBy scrolls the content by dy pixels.
	ScrollBy(dy int)
	// FlingBy starts the content's own fling with the given velocity (px/s).
	FlingBy(velocity int)
	// BeginDrag tells the content the layout took over the gesture; pending
	// presses must be cancelled.
	BeginDrag()
	// EndDrag resets the content's drag tracking and ends any nested scroll
	// it started.
	EndDrag()
}

// PointerHandler is implemented by content that handles the pointer events
// the layout does not consume.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent) bool
}

// NestedScrollContent is content that negotiates scroll deltas with its
// parent through the nested-scroll protocol.
type NestedScrollContent interface {
	Content
	NestedScrollEnabled() bool
	SetNestedScrollParent(parent NestedScrollParent)
}

// NestedScrollParent is the parent side of the two-phase nested-scroll
// protocol. Deltas are positive toward the end of the content.
type NestedScrollParent interface {
	// StartNestedScroll begins a session and reports whether the parent
	// takes part in it.
	StartNestedScroll() bool
	// NestedPreScroll offers dy before the child scrolls; it returns the
	// part the parent consumed.
	NestedPreScroll(dy int) (consumed int)
	// NestedScroll reports what the child scrolled and what it could not;
	// it returns the part of dyUnconsumed the parent consumed.
	NestedScroll(dyConsumed, dyUnconsumed int) (consumed int)
	// StopNestedScroll ends the session.
	StopNestedScroll()
	// NestedPreFling offers a fling before the child handles it.
	NestedPreFling(velocity float64) bool
	// NestedFling reports a fling the child did or did not consume.
	NestedFling(velocity float64, consumed bool) bool
}
