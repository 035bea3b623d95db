package refresh

import (
	"math"
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
)

// flinger continues a release frame by frame. Velocities are in finger
// direction: negative moves up and hides the header.
type flinger struct {
	layout   *Layout
	ticker   *animation.Ticker
	sim      *animation.FrictionSimulation
	velocity float64
	lastY    int
}

// start replaces any running fling and the settle animation.
func (f *flinger) start(velocity float64) {
	f.stop()
	f.layout.animator.stop()
	f.velocity = velocity
	f.sim = animation.NewFrictionSimulation(0, velocity)
	f.lastY = 0
	f.ticker = animation.NewTicker(f.step)
	f.ticker.Start()
}

func (f *flinger) stop() {
	if f.ticker != nil {
		f.ticker.Stop()
		f.ticker = nil
	}
}

func (f *flinger) running() bool {
	return f.ticker != nil && f.ticker.IsActive()
}

// flingDistance returns how far a fling at velocity would travel.
func flingDistance(velocity float64) float64 {
	return math.Abs(animation.NewFrictionSimulation(0, velocity).FinalX())
}

func (f *flinger) step(elapsed time.Duration) {
	l := f.layout
	t := elapsed.Seconds()
	y := int(f.sim.X(t))

	if f.velocity < 0 {
		if !f.sim.IsDone(t) && l.offset.current > 0 {
			l.offset.move(max(y-f.lastY, -l.offset.current))
			f.lastY = y
			if l.offset.current > 0 {
				return
			}
		}
		residual := f.sim.DX(t)
		f.stop()
		if residual < 0 {
			l.content.FlingBy(int(-residual))
		}
		l.afterFling()
		return
	}

	if l.offset.current >= l.offset.header || f.sim.IsDone(t) {
		f.stop()
		l.afterFling()
		return
	}
	if l.refreshing && !l.content.CanScrollUp() {
		l.offset.move(min(l.offset.header-l.offset.current, y-f.lastY))
	}
	f.lastY = y
}

// fling decides what a release at velocity does. It reports whether the
// layout handled it; unhandled releases are left to the content.
func (l *Layout) fling(velocity float64) bool {
	minVelocity := l.config.MinFlingVelocity
	switch {
	case velocity < -minVelocity:
		if l.offset.current > 0 {
			if flingDistance(velocity) > float64(l.offset.current) || l.refreshing {
				l.flinger.start(velocity)
			} else {
				l.animator.toStart()
			}
			return true
		}
		if !l.nested && l.session != nil && l.session.hasTransferredToContent {
			l.content.FlingBy(int(-velocity))
			return true
		}
	case velocity > minVelocity:
		if l.refreshing && flingDistance(velocity) > float64(l.content.ScrollOffset()) {
			l.content.FlingBy(int(-velocity))
			l.flinger.start(velocity)
			return true
		}
	}
	return false
}

func (l *Layout) afterFling() {
	if l.session != nil || l.scroll.active {
		return
	}
	if l.offset.current > 0 && !l.refreshing {
		l.animator.toStart()
		return
	}
	l.settle()
}
