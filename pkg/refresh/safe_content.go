package refresh

import (
	"github.com/go-drift/pullrefresh/pkg/errors"
	"github.com/go-drift/pullrefresh/pkg/gestures"
)

// safeContent shields the gesture state machine from a failing adapter.
// A panicking call is reported and treated as a no-op; queries fall back to
// their zero value. A missing adapter behaves like content that cannot scroll.
type safeContent struct {
	Content
}

func (s safeContent) CanScrollUp() (ok bool) {
	if s.Content == nil {
		return false
	}
	defer errors.Recover("refresh.content.CanScrollUp")
	return s.Content.CanScrollUp()
}

func (s safeContent) CanScrollDown() (ok bool) {
	if s.Content == nil {
		return false
	}
	defer errors.Recover("refresh.content.CanScrollDown")
	return s.Content.CanScrollDown()
}

func (s safeContent) ScrollOffset() (offset int) {
	if s.Content == nil {
		return 0
	}
	defer errors.Recover("refresh.content.ScrollOffset")
	return s.Content.ScrollOffset()
}

func (s safeContent) ScrollBy(dy int) {
	if s.Content == nil || dy == 0 {
		return
	}
	defer errors.Recover("refresh.content.ScrollBy")
	s.Content.ScrollBy(dy)
}

func (s safeContent) FlingBy(velocity int) {
	if s.Content == nil || velocity == 0 {
		return
	}
	defer errors.Recover("refresh.content.FlingBy")
	s.Content.FlingBy(velocity)
}

func (s safeContent) BeginDrag() {
	if s.Content == nil {
		return
	}
	defer errors.Recover("refresh.content.BeginDrag")
	s.Content.BeginDrag()
}

func (s safeContent) EndDrag() {
	if s.Content == nil {
		return
	}
	defer errors.Recover("refresh.content.EndDrag")
	s.Content.EndDrag()
}

func (s safeContent) HandlePointer(event gestures.PointerEvent) (handled bool) {
	h, ok := s.Content.(PointerHandler)
	if !ok {
		return false
	}
	defer errors.Recover("refresh.content.HandlePointer")
	return h.HandlePointer(event)
}
