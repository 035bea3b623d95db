// Package refresh implements a pull-to-refresh container.
//
// A [Layout] hosts a header view, which doubles as the refresh [Indicator],
// and a scrollable [Content]. It turns pointer events, nested-scroll signals
// from cooperating content, and per-frame ticks into a single reveal offset
// that shifts both header and content, and drives the refresh lifecycle:
//
//	Idle → Preparing → Dragging → Refreshing → Completing → Idle
//
// All methods must be called from the host's UI thread, the same thread that
// calls [animation.StepTickers] once per frame.
package refresh

import (
	"fmt"

	"github.com/go-drift/pullrefresh/pkg/animation"
	"github.com/go-drift/pullrefresh/pkg/errors"
	"github.com/go-drift/pullrefresh/pkg/gestures"
)

// Layout is the pull-to-refresh container.
type Layout struct {
	// OnStateChange, if set, observes every lifecycle transition.
	OnStateChange func(from, to State)

	config Config
	offset offsetModel

	header    View
	indicator Indicator
	content   safeContent
	onRefresh func()

	// nested is true when the attached content speaks the nested-scroll
	// protocol; the raw-touch path is used otherwise.
	nested   bool
	attached bool
	ancestor NestedScrollParent

	state      State
	refreshing bool
	canTrigger bool

	session       *gestureSession
	velocity      *gestures.VelocityTracker
	scroll        nestedContext
	animator      *offsetAnimator
	flinger       *flinger
	completeTimer *animation.Timer
	measureQueued bool
}

// New creates a layout with the given tuning. Zero config fields take their
// defaults.
func New(config Config) (*Layout, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config = config.withDefaults()
	l := &Layout{
		config:     config,
		offset:     offsetModel{resistance: config.Resistance},
		canTrigger: true,
		velocity:   gestures.NewVelocityTracker(config.MaxFlingVelocity),
	}
	l.animator = newOffsetAnimator(l)
	l.flinger = &flinger{layout: l}
	return l, nil
}

// Config returns the effective configuration.
func (l *Layout) Config() Config {
	return l.config
}

// SetHeader registers the header view. The view must implement Indicator.
// A nil view removes the header.
func (l *Layout) SetHeader(view View) error {
	if view == nil {
		l.header, l.indicator = nil, nil
		l.Measure()
		return nil
	}
	indicator, ok := view.(Indicator)
	if !ok {
		return errors.Config("refresh.SetHeader",
			fmt.Errorf("%w: got %T", errors.ErrHeaderNotIndicator, view))
	}
	l.header, l.indicator = view, indicator
	l.Measure()
	return nil
}

// SetContent registers the single content child.
func (l *Layout) SetContent(content Content) error {
	if content == nil {
		return errors.Config("refresh.SetContent",
			fmt.Errorf("%w: content must not be nil", errors.ErrInvalidConfig))
	}
	if l.content.Content != nil {
		return errors.Config("refresh.SetContent", errors.ErrContentAlreadySet)
	}
	l.content = safeContent{content}
	if l.attached {
		l.bindContent()
	}
	return nil
}

// SetOnRefreshListener registers the callback invoked once per refresh the
// user triggers. The callback should eventually call SetRefreshing(false).
func (l *Layout) SetOnRefreshListener(fn func()) {
	l.onRefresh = fn
}

// SetNestedScrollParent registers an ancestor that takes part in nested
// scrolls this layout receives.
func (l *Layout) SetNestedScrollParent(parent NestedScrollParent) {
	l.ancestor = parent
}

// Attach binds the layout to its host. Content that supports nested scrolling
// is switched to the nested path.
func (l *Layout) Attach() {
	l.attached = true
	l.bindContent()
}

func (l *Layout) bindContent() {
	nc, ok := l.content.Content.(NestedScrollContent)
	l.nested = ok && nc.NestedScrollEnabled()
	if l.nested {
		nc.SetNestedScrollParent(l)
	}
}

// Detach stops all motion. A pending completion finishes at once and the
// layout snaps back to rest.
func (l *Layout) Detach() {
	l.attached = false
	l.flinger.stop()
	l.animator.stop()
	l.session = nil
	l.scroll = nestedContext{}
	if l.completeTimer.Stop() {
		l.refreshing = false
		l.offset.move(-l.offset.current)
	}
	l.settle()
}

// Measure re-reads the header height and recomputes the threshold. While a
// gesture is in progress the update is deferred until it ends.
func (l *Layout) Measure() {
	if l.session != nil || l.scroll.active {
		l.measureQueued = true
		return
	}
	l.measureQueued = false
	height := 0
	if l.header != nil {
		height = l.header.MeasuredHeight()
	}
	if height < 0 {
		errors.Report(&errors.RefreshError{
			Op:   "refresh.Layout.Measure",
			Kind: errors.KindContent,
			Err:  fmt.Errorf("header measured %d px, using 0", height),
		})
		height = 0
	}
	l.offset.setHeader(height, l.config.ThresholdRatio)
}

// Positions returns the top edges of the header and the content relative to
// the layout's top, for the host's layout pass.
func (l *Layout) Positions() (headerTop, contentTop int) {
	return l.offset.current - l.offset.header, l.offset.current
}

// Offset returns the current reveal offset.
func (l *Layout) Offset() int {
	return l.offset.current
}

// HeaderHeight returns the measured header height.
func (l *Layout) HeaderHeight() int {
	return l.offset.header
}

// Threshold returns the offset at or beyond which a release refreshes.
func (l *Layout) Threshold() int {
	return l.offset.threshold
}

// State returns the lifecycle state.
func (l *Layout) State() State {
	return l.state
}

// IsRefreshing reports whether a refresh is in progress. It stays true while
// the completion message is shown.
func (l *Layout) IsRefreshing() bool {
	return l.refreshing
}

// IsNested reports whether the layout uses the nested-scroll path.
func (l *Layout) IsNested() bool {
	return l.nested
}

// IsSettling reports whether an offset animation or a fling is running.
func (l *Layout) IsSettling() bool {
	return l.animator.running() || l.flinger.running()
}

// notifyPull reports drag progress to the indicator.
func (l *Layout) notifyPull() {
	if l.canTrigger && l.indicator != nil {
		l.indicator.OnPull(l.offset.crossed(), l.offset.current)
	}
}

// reveal applies a resisted downward delta, firing onPrepare on the
// transition from zero. It returns the applied offset change.
func (l *Layout) reveal(raw float64) int {
	steps := l.offset.resist(raw)
	if steps == 0 {
		return 0
	}
	if l.offset.current == 0 && l.canTrigger {
		l.setState(StatePreparing)
		if l.indicator != nil {
			l.indicator.OnPrepare()
		}
	} else {
		l.dragged()
	}
	applied := l.offset.move(steps)
	l.notifyPull()
	return applied
}

// hide applies an upward delta and returns the part the offset could not absorb.
func (l *Layout) hide(raw float64) int {
	applied, unconsumed := l.offset.applyDelta(raw)
	if applied != 0 {
		l.dragged()
		l.notifyPull()
	}
	return unconsumed
}

func (l *Layout) dragged() {
	if l.state == StatePreparing || (l.state == StateIdle && !l.refreshing) {
		l.setState(StateDragging)
	}
}
