package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
)

// DefaultFrameDuration is the frame interval used by Pump helpers.
const DefaultFrameDuration = 16 * time.Millisecond

// DefaultSettleTimeout bounds PumpAndSettle in tests that expect motion to end.
const DefaultSettleTimeout = 5 * time.Second

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tickers did not settle")

// FrameTester drives the animation frame loop on a fake clock.
type FrameTester struct {
	// FrameDuration is how far the clock moves per pumped frame.
	FrameDuration time.Duration

	clock     *FakeClock
	prevClock animation.Clock
	nextID    int64
}

// NewFrameTester installs a fake clock and returns a tester.
// Call Cleanup when done, or use NewFrameTesterWithT instead.
func NewFrameTester() *FrameTester {
	clk := NewFakeClock()
	animation.StopAll()
	return &FrameTester{
		FrameDuration: DefaultFrameDuration,
		clock:         clk,
		prevClock:     animation.SetClock(clk),
	}
}

// NewFrameTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewFrameTesterWithT(t *testing.T) *FrameTester {
	tester := NewFrameTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup cancels outstanding tickers and timers and restores the clock.
func (t *FrameTester) Cleanup() {
	animation.StopAll()
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *FrameTester) Clock() *FakeClock {
	return t.clock
}

// Pump runs a single frame at the current time without advancing the clock.
func (t *FrameTester) Pump() {
	animation.StepTickers()
}

// PumpFrames advances the clock by one frame and pumps, n times.
func (t *FrameTester) PumpFrames(n int) {
	for range n {
		t.clock.Advance(t.FrameDuration)
		animation.StepTickers()
	}
}

// PumpFor pumps frames until at least d of fake time has passed.
func (t *FrameTester) PumpFor(d time.Duration) {
	var elapsed time.Duration
	for elapsed < d {
		t.clock.Advance(t.FrameDuration)
		elapsed += t.FrameDuration
		animation.StepTickers()
	}
}

// PumpAndSettle pumps frames until no ticker is active or timeout is reached.
// Pending timers do not keep the loop alive; use PumpFor to reach them.
func (t *FrameTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	t.Pump()
	for animation.HasActiveTickers() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		t.clock.Advance(t.FrameDuration)
		elapsed += t.FrameDuration
		animation.StepTickers()
	}
	return nil
}

func (t *FrameTester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}
