package refresh

import (
	"fmt"
	"testing"

	refreshtest "github.com/go-drift/pullrefresh/pkg/testing"
)

type recordingIndicator struct {
	height int
	events []string
	pulls  []pull
}

type pull struct {
	willTrigger bool
	offset      int
}

func (r *recordingIndicator) MeasuredHeight() int { return r.height }
func (r *recordingIndicator) OnPrepare()          { r.events = append(r.events, "prepare") }
func (r *recordingIndicator) OnStart()            { r.events = append(r.events, "start") }
func (r *recordingIndicator) OnComplete()         { r.events = append(r.events, "complete") }

func (r *recordingIndicator) OnPull(willTrigger bool, offset int) {
	r.pulls = append(r.pulls, pull{willTrigger, offset})
}

func (r *recordingIndicator) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// fakeContent is a content adapter without pointer handling, so the layout
// sees every event first and alone.
type fakeContent struct {
	offset   int
	max      int
	scrolled []int
	flings   []int
	begins   int
	ends     int
}

func (c *fakeContent) CanScrollUp() bool   { return c.offset > 0 }
func (c *fakeContent) CanScrollDown() bool { return c.offset < c.max }
func (c *fakeContent) ScrollOffset() int   { return c.offset }
func (c *fakeContent) FlingBy(v int)       { c.flings = append(c.flings, v) }
func (c *fakeContent) BeginDrag()          { c.begins++ }
func (c *fakeContent) EndDrag()            { c.ends++ }

func (c *fakeContent) ScrollBy(dy int) {
	c.scrolled = append(c.scrolled, dy)
	c.offset = min(max(c.offset+dy, 0), c.max)
}

type harness struct {
	layout    *Layout
	indicator *recordingIndicator
	content   *fakeContent
	tester    *refreshtest.FrameTester
	refreshes int
	states    []string
}

// nestedContent switches the layout to the nested-scroll path. The test
// drives the NestedScrollParent calls itself.
type nestedContent struct {
	fakeContent
	parent NestedScrollParent
}

func (*nestedContent) NestedScrollEnabled() bool { return true }

func (c *nestedContent) SetNestedScrollParent(p NestedScrollParent) { c.parent = p }

func newHarness(t *testing.T) *harness {
	t.Helper()
	c := &fakeContent{max: 1000}
	return buildHarness(t, c, c)
}

func newNestedHarness(t *testing.T) *harness {
	t.Helper()
	c := &nestedContent{fakeContent: fakeContent{max: 1000}}
	h := buildHarness(t, &c.fakeContent, c)
	if !h.layout.IsNested() || c.parent != h.layout {
		t.Fatal("layout did not take the nested path")
	}
	return h
}

func buildHarness(t *testing.T, fake *fakeContent, content Content) *harness {
	t.Helper()
	h := &harness{
		indicator: &recordingIndicator{height: 100},
		content:   fake,
		tester:    refreshtest.NewFrameTesterWithT(t),
	}
	l, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.SetHeader(h.indicator); err != nil {
		t.Fatalf("SetHeader: %v", err)
	}
	if err := l.SetContent(content); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	l.SetOnRefreshListener(func() { h.refreshes++ })
	l.OnStateChange = func(from, to State) {
		h.states = append(h.states, fmt.Sprintf("%s->%s", from, to))
	}
	l.Attach()
	h.layout = l
	return h
}

// pullTo drags from rest past the slop and then by each delta.
func (h *harness) pull(deltas ...float64) *refreshtest.Finger {
	f := h.tester.Touch(h.layout)
	f.Down(0, 100)
	f.MoveBy(float64(DefaultTouchSlop) + 2)
	for _, d := range deltas {
		f.MoveBy(d)
	}
	return f
}

func (h *harness) settle(t *testing.T) {
	t.Helper()
	if err := h.tester.PumpAndSettle(refreshtest.DefaultSettleTimeout); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
}
