// Package content provides Scroller, an in-memory scrollable content that
// implements the refresh layout's content contracts. Hosts use it as a model
// for their own adapters; the pullsim tool and the layout tests drive it
// directly.
package content

import (
	"math"
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/refresh"
)

// Scroller is a vertically scrolling content region of a fixed extent seen
// through a viewport. Offsets and deltas are in pixels; positive scrolls
// toward the end of the content.
type Scroller struct {
	// TouchSlop is the distance a pointer travels before the scroller drags.
	TouchSlop int
	// MinFlingVelocity is the release speed (px/s) below which no fling starts.
	MinFlingVelocity float64
	// OnScroll, if set, is called after every offset change.
	OnScroll func(offset int)

	extent   int
	viewport int
	offset   int

	nestedEnabled bool
	parent        refresh.NestedScrollParent
	nestedActive  bool

	tracker   gestures.PointerTracker
	velocity  *gestures.VelocityTracker
	dragging  bool
	cancelled bool

	fling      *animation.Ticker
	sim        *animation.FrictionSimulation
	flingStart int
	lastFling  int
}

// NewScroller creates a scroller for content of the given extent shown in a
// viewport of the given height.
func NewScroller(extent, viewport int) *Scroller {
	return &Scroller{
		TouchSlop:        refresh.DefaultTouchSlop,
		MinFlingVelocity: refresh.DefaultMinFlingVelocity,
		extent:           max(extent, 0),
		viewport:         max(viewport, 0),
		velocity:         gestures.NewVelocityTracker(refresh.DefaultMaxFlingVelocity),
	}
}

// SetNestedScrollEnabled selects whether the scroller negotiates its drags
// with a parent.
func (s *Scroller) SetNestedScrollEnabled(enabled bool) {
	s.nestedEnabled = enabled
}

// NestedScrollEnabled implements refresh.NestedScrollContent.
func (s *Scroller) NestedScrollEnabled() bool {
	return s.nestedEnabled
}

// SetNestedScrollParent implements refresh.NestedScrollContent.
func (s *Scroller) SetNestedScrollParent(parent refresh.NestedScrollParent) {
	s.parent = parent
}

// MaxOffset returns the largest reachable scroll offset.
func (s *Scroller) MaxOffset() int {
	return max(s.extent-s.viewport, 0)
}

// ScrollOffset implements refresh.Content.
func (s *Scroller) ScrollOffset() int {
	return s.offset
}

// CanScrollUp implements refresh.Content.
func (s *Scroller) CanScrollUp() bool {
	return s.offset > 0
}

// CanScrollDown implements refresh.Content.
func (s *Scroller) CanScrollDown() bool {
	return s.offset < s.MaxOffset()
}

// ScrollBy implements refresh.Content.
func (s *Scroller) ScrollBy(dy int) {
	s.scroll(dy)
}

// JumpTo moves to offset, clamped to the content.
func (s *Scroller) JumpTo(offset int) {
	s.StopFling()
	s.setOffset(offset)
}

// scroll moves by dy and returns the part that was applied.
func (s *Scroller) scroll(dy int) int {
	before := s.offset
	s.setOffset(s.offset + dy)
	return s.offset - before
}

func (s *Scroller) setOffset(offset int) {
	offset = min(max(offset, 0), s.MaxOffset())
	if offset == s.offset {
		return
	}
	s.offset = offset
	if s.OnScroll != nil {
		s.OnScroll(offset)
	}
}

// FlingBy implements refresh.Content. The fling decelerates with the default
// friction and stops at either edge.
func (s *Scroller) FlingBy(velocity int) {
	s.StopFling()
	s.lastFling = velocity
	if velocity == 0 {
		return
	}
	s.sim = animation.NewFrictionSimulation(0, float64(velocity))
	s.flingStart = s.offset
	s.fling = animation.NewTicker(s.stepFling)
	s.fling.Start()
}

// LastFlingVelocity returns the velocity of the most recent FlingBy call.
func (s *Scroller) LastFlingVelocity() int {
	return s.lastFling
}

// IsFlinging reports whether a fling is running.
func (s *Scroller) IsFlinging() bool {
	return s.fling != nil && s.fling.IsActive()
}

// StopFling halts a running fling.
func (s *Scroller) StopFling() {
	if s.fling != nil {
		s.fling.Stop()
		s.fling = nil
	}
}

func (s *Scroller) stepFling(elapsed time.Duration) {
	t := elapsed.Seconds()
	target := s.flingStart + int(s.sim.X(t))
	s.setOffset(target)
	if s.sim.IsDone(t) || s.offset != target {
		s.StopFling()
	}
}

// BeginDrag implements refresh.Content. The current drag is abandoned until
// the next pointer down.
func (s *Scroller) BeginDrag() {
	s.cancelled = true
	s.dragging = false
}

// EndDrag implements refresh.Content.
func (s *Scroller) EndDrag() {
	s.dragging = false
	s.velocity.Clear()
	s.stopNestedScroll()
}

func (s *Scroller) stopNestedScroll() {
	if !s.nestedActive {
		return
	}
	s.nestedActive = false
	s.parent.StopNestedScroll()
}

// HandlePointer drags and flings the content.
func (s *Scroller) HandlePointer(event gestures.PointerEvent) bool {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		s.StopFling()
		s.cancelled = false
		s.dragging = false
		s.velocity.Clear()
		if !s.tracker.Down(event) {
			return false
		}
		s.velocity.Add(event.Time, s.tracker.LastY())
		if s.nestedEnabled && s.parent != nil {
			s.stopNestedScroll()
			s.nestedActive = s.parent.StartNestedScroll()
		}
		return true
	case gestures.PointerPhaseMove:
		if s.cancelled {
			return false
		}
		p, ok := s.tracker.Resolve(event)
		if !ok {
			return false
		}
		s.velocity.Add(event.Time, p.Y)
		dy := s.tracker.LastY() - p.Y
		if !s.dragging {
			if math.Abs(dy) < float64(s.TouchSlop) {
				return false
			}
			s.dragging = true
			s.tracker.SetLast(p)
			return true
		}
		s.tracker.SetLast(p)
		s.drag(int(math.Round(dy)))
		return true
	case gestures.PointerPhaseUp:
		if s.cancelled {
			s.cancelled = false
			s.EndDrag()
			return false
		}
		if p, ok := s.tracker.Resolve(event); ok {
			s.velocity.Add(event.Time, p.Y)
		}
		dragged := s.dragging
		if dragged {
			s.release(-s.velocity.Velocity())
		}
		s.EndDrag()
		s.tracker.Reset()
		return dragged
	case gestures.PointerPhaseCancel:
		s.EndDrag()
		s.tracker.Reset()
		return false
	case gestures.PointerPhasePointerDown:
		s.tracker.PointerDown(event)
		s.velocity.Clear()
	case gestures.PointerPhasePointerUp:
		s.tracker.PointerUp(event)
		s.velocity.Clear()
	}
	return false
}

// drag applies a content-direction delta, offering it to the nested-scroll
// parent before and after the scroller takes its share.
func (s *Scroller) drag(dy int) {
	if dy == 0 {
		return
	}
	if !s.nestedActive {
		s.scroll(dy)
		return
	}
	rest := dy - s.parent.NestedPreScroll(dy)
	scrolled := s.scroll(rest)
	s.parent.NestedScroll(scrolled, rest-scrolled)
}

func (s *Scroller) release(velocity float64) {
	if math.Abs(velocity) < s.MinFlingVelocity {
		return
	}
	canFling := (velocity < 0 && s.CanScrollUp()) || (velocity > 0 && s.CanScrollDown())
	if s.nestedActive {
		if s.parent.NestedPreFling(velocity) {
			return
		}
		s.parent.NestedFling(velocity, canFling)
	}
	if canFling {
		s.FlingBy(int(velocity))
	}
}
