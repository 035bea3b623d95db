package animation

import "time"

// Clock provides time for tickers, timers and simulations. The default
// implementation uses system time. Tests inject a fake clock via SetClock so
// frames can be stepped deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock Clock = systemClock{}

// SetClock replaces the frame clock and returns the previous one so callers
// can restore it during cleanup. Passing nil restores system time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
