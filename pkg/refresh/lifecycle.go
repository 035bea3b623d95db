package refresh

import (
	"fmt"

	"github.com/go-drift/pullrefresh/pkg/animation"
)

// State is a refresh lifecycle state.
type State int

const (
	// StateIdle means nothing is revealed and a refresh can be triggered.
	StateIdle State = iota
	// StatePreparing means a gesture just started revealing from zero.
	StatePreparing
	// StateDragging means the offset is following a gesture.
	StateDragging
	// StateRefreshing means a refresh is in progress.
	StateRefreshing
	// StateCompleting means the refresh ended and the completion message is
	// shown before the header hides.
	StateCompleting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreparing:
		return "preparing"
	case StateDragging:
		return "dragging"
	case StateRefreshing:
		return "refreshing"
	case StateCompleting:
		return "completing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (l *Layout) setState(next State) {
	if l.state == next {
		return
	}
	prev := l.state
	l.state = next
	if l.OnStateChange != nil {
		l.OnStateChange(prev, next)
	}
}

// SetRefreshing starts or ends a refresh programmatically. Starting runs the
// same animation and indicator callbacks as a user-triggered refresh but does
// not call the refresh listener. Repeated calls with the same value are
// no-ops.
func (l *Layout) SetRefreshing(refreshing bool) {
	switch {
	case refreshing && !l.refreshing:
		l.startRefresh()
		l.animator.toRefresh()
	case !refreshing && l.refreshing && l.state != StateCompleting:
		l.setState(StateCompleting)
		if l.indicator != nil {
			l.indicator.OnComplete()
		}
		l.completeTimer = animation.AfterFunc(l.config.CompleteDelay, l.finishRefresh)
	}
}

func (l *Layout) startRefresh() {
	l.refreshing = true
	l.canTrigger = false
	l.setState(StateRefreshing)
	if l.indicator != nil {
		l.indicator.OnStart()
	}
}

// trigger starts a refresh from a release past the threshold. It reports
// whether the listener was notified.
func (l *Layout) trigger() bool {
	if !l.canTrigger || l.offset.current == 0 {
		return false
	}
	l.startRefresh()
	if l.onRefresh != nil {
		l.onRefresh()
	}
	return true
}

// settleCrossed ends a gesture that released past the threshold.
func (l *Layout) settleCrossed() {
	l.trigger()
	if l.refreshing {
		l.animator.toRefresh()
	} else {
		l.animator.toStart()
	}
}

// finishRefresh runs after the completion delay. The header only hides when
// no gesture holds it.
func (l *Layout) finishRefresh() {
	l.completeTimer = nil
	l.refreshing = false
	if l.session == nil && !l.scroll.active {
		l.animator.toStart()
		return
	}
	l.setState(StateDragging)
}

// settle returns to Idle once nothing is revealed, refreshing or moving.
func (l *Layout) settle() {
	if l.refreshing || l.offset.current != 0 || l.IsSettling() {
		return
	}
	l.canTrigger = true
	l.setState(StateIdle)
}
