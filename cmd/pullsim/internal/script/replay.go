package script

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
	"github.com/go-drift/pullrefresh/pkg/content"
	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/refresh"
	refreshtest "github.com/go-drift/pullrefresh/pkg/testing"
)

// DefaultSettleLimit bounds the frames pumped after the last step.
const DefaultSettleLimit = 30 * time.Second

// ErrNotSettled is returned when motion or a pending completion outlives the
// settle limit.
var ErrNotSettled = errors.New("layout did not settle")

// Options tunes a replay.
type Options struct {
	// Verbose adds lifecycle transitions and indicator callbacks to the notes.
	Verbose bool
	// SettleLimit bounds the time pumped after the last step.
	SettleLimit time.Duration
}

type replayer struct {
	script   *Script
	opts     Options
	tester   *refreshtest.FrameTester
	layout   *refresh.Layout
	header   *refresh.LabelIndicator
	scroller *content.Scroller
	pointers pointerSet
	trace    *Trace
	notes    []string
}

// Replay drives the script through a fresh layout and returns the trace. The
// animation clock is replaced for the duration of the call, so replays must
// not run concurrently with each other or with a live frame loop.
func Replay(s *Script, opts Options) (*Trace, error) {
	if opts.SettleLimit <= 0 {
		opts.SettleLimit = DefaultSettleLimit
	}
	tester := refreshtest.NewFrameTester()
	defer tester.Cleanup()

	r := &replayer{
		script:   s,
		opts:     opts,
		tester:   tester,
		header:   refresh.NewLabelIndicator(s.Header.Height),
		scroller: content.NewScroller(s.Content.Extent, s.Content.Viewport),
	}
	if err := r.setup(); err != nil {
		return nil, err
	}
	defer r.layout.Detach()

	r.record("start")
	for i, step := range s.Steps {
		if err := r.step(step); err != nil {
			return r.trace, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return r.trace, r.settle()
}

func (r *replayer) setup() error {
	layout, err := refresh.New(r.script.Config)
	if err != nil {
		return err
	}
	r.scroller.SetNestedScrollEnabled(r.script.Content.Nested)
	r.scroller.JumpTo(r.script.Content.Scroll)
	if err := layout.SetHeader(r.header); err != nil {
		return err
	}
	if err := layout.SetContent(r.scroller); err != nil {
		return err
	}
	r.layout = layout
	r.trace = &Trace{
		Header:    layout.HeaderHeight(),
		Threshold: layout.Threshold(),
		Frame:     r.tester.FrameDuration,
	}

	if r.opts.Verbose {
		r.header.OnLabel = func(label string) { r.note("label %q", label) }
		layout.OnStateChange = func(from, to refresh.State) { r.note("%s -> %s", from, to) }
	}
	layout.SetOnRefreshListener(func() {
		r.trace.Refreshes++
		r.note("refresh requested")
		if d := r.script.AutoComplete; d > 0 {
			animation.AfterFunc(d, func() { layout.SetRefreshing(false) })
		}
	})
	layout.Attach()
	return nil
}

func (r *replayer) note(format string, args ...any) {
	r.notes = append(r.notes, fmt.Sprintf(format, args...))
}

func (r *replayer) step(step Step) error {
	action, err := step.Action()
	if err != nil {
		return err
	}
	r.advance(step.Delay())

	switch action {
	case ActionWait:
		r.advance(*step.Wait)
		r.record(fmt.Sprintf("wait %s", *step.Wait))
	case ActionRefreshing:
		r.layout.SetRefreshing(*step.Refreshing)
		r.record(fmt.Sprintf("refreshing=%t", *step.Refreshing))
	default:
		p := step.Point()
		event, err := r.pointers.apply(action, p, r.tester.Clock().Since())
		if err != nil {
			return err
		}
		handled := r.layout.HandlePointer(event)
		label := describe(action, event)
		if r.opts.Verbose && handled {
			label += " (handled)"
		}
		r.record(label)
	}
	return nil
}

// advance pumps whole frames covering d, recording frames that change
// anything visible.
func (r *replayer) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += r.tester.FrameDuration {
		r.tester.PumpFrames(1)
		r.sample()
	}
}

func (r *replayer) settle() error {
	var elapsed time.Duration
	for animation.HasActiveTickers() || animation.HasPendingTimers() {
		if elapsed >= r.opts.SettleLimit {
			return fmt.Errorf("%w within %s", ErrNotSettled, r.opts.SettleLimit)
		}
		r.tester.PumpFrames(1)
		elapsed += r.tester.FrameDuration
		r.sample()
	}
	return nil
}

func (r *replayer) snapshot(event string) Line {
	line := Line{
		Time:    r.tester.Clock().Since(),
		Event:   event,
		Offset:  r.layout.Offset(),
		Content: r.scroller.ScrollOffset(),
		State:   r.layout.State(),
		Label:   r.header.Label(),
		Notes:   r.notes,
	}
	r.notes = nil
	return line
}

func (r *replayer) record(event string) {
	line := r.snapshot(event)
	r.trace.addFrame(line)
	r.trace.Lines = append(r.trace.Lines, line)
}

func (r *replayer) sample() {
	line := r.snapshot("frame")
	r.trace.addFrame(line)
	if n := len(r.trace.Lines); n > 0 && !r.trace.Lines[n-1].changed(line) {
		return
	}
	r.trace.Lines = append(r.trace.Lines, line)
}

func describe(action Action, event gestures.PointerEvent) string {
	p, _ := event.Find(event.PointerID)
	switch action {
	case ActionDown, ActionMove:
		return fmt.Sprintf("%s y=%g", action, p.Y)
	case ActionPointerDown, ActionPointerUp:
		return fmt.Sprintf("%s id=%d y=%g", action, p.ID, p.Y)
	default:
		return action.String()
	}
}

// pointerSet tracks the pointers that are down so every event carries all
// of them, the way a platform reports multi-touch.
type pointerSet struct {
	down []gestures.Pointer
}

func (ps *pointerSet) index(id int64) int {
	return slices.IndexFunc(ps.down, func(p gestures.Pointer) bool { return p.ID == id })
}

// resolve maps ID zero to the most recent pointer.
func (ps *pointerSet) resolve(id int64) (int, error) {
	if len(ps.down) == 0 {
		return -1, fmt.Errorf("%w: no pointer is down", ErrInvalidScript)
	}
	if id == 0 {
		return len(ps.down) - 1, nil
	}
	i := ps.index(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: pointer %d is not down", ErrInvalidScript, id)
	}
	return i, nil
}

func (ps *pointerSet) event(phase gestures.PointerPhase, changed int64, at time.Duration) gestures.PointerEvent {
	return gestures.PointerEvent{
		Phase:     phase,
		PointerID: changed,
		Pointers:  slices.Clone(ps.down),
		Time:      at,
	}
}

func (ps *pointerSet) apply(action Action, p Point, at time.Duration) (gestures.PointerEvent, error) {
	switch action {
	case ActionDown:
		if len(ps.down) > 0 {
			return gestures.PointerEvent{}, fmt.Errorf("%w: down while %d pointer(s) are down", ErrInvalidScript, len(ps.down))
		}
		if p.ID == 0 {
			p.ID = 1
		}
		ps.down = []gestures.Pointer{{ID: p.ID, X: p.X, Y: p.Y}}
		return ps.event(gestures.PointerPhaseDown, p.ID, at), nil

	case ActionPointerDown:
		if len(ps.down) == 0 {
			return gestures.PointerEvent{}, fmt.Errorf("%w: pointer_down needs a pointer that is already down", ErrInvalidScript)
		}
		if p.ID == 0 {
			p.ID = slices.MaxFunc(ps.down, func(a, b gestures.Pointer) int { return cmp.Compare(a.ID, b.ID) }).ID + 1
		}
		if ps.index(p.ID) >= 0 {
			return gestures.PointerEvent{}, fmt.Errorf("%w: pointer %d is already down", ErrInvalidScript, p.ID)
		}
		ps.down = append(ps.down, gestures.Pointer{ID: p.ID, X: p.X, Y: p.Y})
		return ps.event(gestures.PointerPhasePointerDown, p.ID, at), nil

	case ActionMove:
		i, err := ps.resolve(p.ID)
		if err != nil {
			return gestures.PointerEvent{}, err
		}
		ps.down[i].X, ps.down[i].Y = p.X, p.Y
		return ps.event(gestures.PointerPhaseMove, ps.down[i].ID, at), nil

	case ActionPointerUp:
		i, err := ps.resolve(p.ID)
		if err != nil {
			return gestures.PointerEvent{}, err
		}
		if len(ps.down) == 1 {
			return gestures.PointerEvent{}, fmt.Errorf("%w: pointer_up lifts the last pointer, use up", ErrInvalidScript)
		}
		id := ps.down[i].ID
		event := ps.event(gestures.PointerPhasePointerUp, id, at)
		ps.down = slices.Delete(ps.down, i, i+1)
		return event, nil

	case ActionUp:
		if len(ps.down) != 1 {
			return gestures.PointerEvent{}, fmt.Errorf("%w: up with %d pointers down", ErrInvalidScript, len(ps.down))
		}
		event := ps.event(gestures.PointerPhaseUp, ps.down[0].ID, at)
		ps.down = nil
		return event, nil

	case ActionCancel:
		if len(ps.down) == 0 {
			return gestures.PointerEvent{}, fmt.Errorf("%w: cancel with no pointer down", ErrInvalidScript)
		}
		event := ps.event(gestures.PointerPhaseCancel, ps.down[0].ID, at)
		ps.down = nil
		return event, nil
	}
	return gestures.PointerEvent{}, fmt.Errorf("%w: %s is not a pointer action", ErrInvalidScript, action)
}
