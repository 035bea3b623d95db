package refresh

import (
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
)

type animationTarget int

const (
	targetStart animationTarget = iota
	targetRefresh
)

// offsetAnimator eases the offset to zero or to the header height.
type offsetAnimator struct {
	layout     *Layout
	controller *animation.AnimationController
	target     animationTarget
	from, to   int
}

func newOffsetAnimator(l *Layout) *offsetAnimator {
	a := &offsetAnimator{
		layout:     l,
		controller: animation.NewAnimationController(0),
	}
	a.controller.Curve = animation.Decelerate(2)
	a.controller.AddListener(a.apply)
	a.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			a.finished()
		}
	})
	return a
}

// toStart hides the header. The duration scales with the distance and is
// capped.
func (a *offsetAnimator) toStart() {
	from := a.layout.offset.current
	a.start(targetStart, from, 0, a.duration(a.layout.config.StartDuration, from))
}

// toRefresh moves the header to its resting position while refreshing.
func (a *offsetAnimator) toRefresh() {
	l := a.layout
	from := l.offset.current
	a.start(targetRefresh, from, l.offset.header, a.duration(l.config.RefreshDuration, from-l.offset.header))
}

func (a *offsetAnimator) duration(perHeader time.Duration, distance int) time.Duration {
	header := a.layout.offset.header
	if header <= 0 {
		return 0
	}
	distance = max(distance, -distance)
	d := time.Duration(float64(perHeader) * float64(distance) / float64(header))
	return min(d, a.layout.config.MaxSettleDuration)
}

func (a *offsetAnimator) start(target animationTarget, from, to int, d time.Duration) {
	a.layout.flinger.stop()
	a.target, a.from, a.to = target, from, to
	a.controller.Duration = d
	a.controller.Forward()
}

func (a *offsetAnimator) apply() {
	pos := a.from + int(float64(a.to-a.from)*a.controller.Value)
	a.layout.offset.move(pos - a.layout.offset.current)
}

func (a *offsetAnimator) finished() {
	l := a.layout
	switch a.target {
	case targetStart:
		if !l.refreshing && l.offset.current == 0 {
			l.canTrigger = true
		}
	case targetRefresh:
		l.canTrigger = !l.refreshing
	}
	l.settle()
}

func (a *offsetAnimator) stop() {
	a.controller.Stop()
}

func (a *offsetAnimator) running() bool {
	return a.controller.IsAnimating()
}
