// Package animation provides the frame-driven timing primitives used by the
// pull-to-refresh layout.
//
// # Execution Model
//
// Everything in this package runs on the host's UI thread. The host calls
// [StepTickers] once per display frame; that single call fires any due
// one-shot [Timer] callbacks and then advances every active [Ticker]. No
// callback ever blocks: long-running effects such as an offset animation or a
// fling re-arm themselves by staying registered until they finish.
//
// # Core Components
//
//   - [Ticker]: per-frame callback receiving the time elapsed since Start.
//   - [Timer]: one-shot deferred callback, the frame-clock analogue of a
//     delayed post.
//   - [AnimationController]: eases a value from 0 to 1 over a duration.
//   - [FrictionSimulation]: closed-form deceleration used for flings.
//
// Tests replace the time source with [SetClock] and call StepTickers directly.
package animation

import (
	"slices"
	"time"
)

var (
	activeTickers []*Ticker
	pendingTimers []*Timer
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	activeTickers = append(activeTickers, t)
}

// Stop deactivates the ticker. It will not be called again, even if it is
// stopped from inside another ticker's callback during the same frame.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	activeTickers = slices.DeleteFunc(activeTickers, func(other *Ticker) bool {
		return other == t
	})
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// Timer is a one-shot callback fired by the first StepTickers call at or
// after its deadline.
type Timer struct {
	fn       func()
	deadline time.Time
	pending  bool
}

// AfterFunc schedules fn to run once d has elapsed on the frame clock.
func AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{
		fn:       fn,
		deadline: Now().Add(d),
		pending:  true,
	}
	pendingTimers = append(pendingTimers, t)
	return t
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running.
func (t *Timer) Stop() bool {
	if t == nil || !t.pending {
		return false
	}
	t.pending = false
	pendingTimers = slices.DeleteFunc(pendingTimers, func(other *Timer) bool {
		return other == t
	})
	return true
}

// Pending reports whether the callback has yet to run.
func (t *Timer) Pending() bool {
	return t != nil && t.pending
}

// StepTickers fires due timers and then advances all active tickers.
// This should be called once per frame by the host.
func StepTickers() {
	now := Now()

	if len(pendingTimers) > 0 {
		timers := slices.Clone(pendingTimers)
		for _, timer := range timers {
			if !timer.pending || now.Before(timer.deadline) {
				continue
			}
			timer.Stop()
			if timer.fn != nil {
				timer.fn()
			}
		}
	}

	if len(activeTickers) == 0 {
		return
	}
	// Callbacks may start or stop tickers; iterate over a snapshot.
	tickers := slices.Clone(activeTickers)
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	return len(activeTickers) > 0
}

// HasPendingTimers returns true if any timers have yet to fire.
func HasPendingTimers() bool {
	return len(pendingTimers) > 0
}

// StopAll cancels every ticker and timer. Hosts call it on teardown; tests
// call it between cases.
func StopAll() {
	for _, ticker := range slices.Clone(activeTickers) {
		ticker.Stop()
	}
	for _, timer := range slices.Clone(pendingTimers) {
		timer.Stop()
	}
}
