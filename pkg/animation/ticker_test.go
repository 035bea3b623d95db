package animation

import (
	"testing"
	"time"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) step(d time.Duration) {
	c.now = c.now.Add(d)
	StepTickers()
}

func useManualClock(t *testing.T) *manualClock {
	t.Helper()
	clk := &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() {
		StopAll()
		SetClock(prev)
	})
	return clk
}

func TestTicker_ElapsedSinceStart(t *testing.T) {
	clk := useManualClock(t)
	var seen []time.Duration
	ticker := NewTicker(func(elapsed time.Duration) { seen = append(seen, elapsed) })
	ticker.Start()
	ticker.Start()
	if !HasActiveTickers() {
		t.Fatal("expected an active ticker")
	}

	clk.step(16 * time.Millisecond)
	clk.step(16 * time.Millisecond)
	if len(seen) != 2 || seen[0] != 16*time.Millisecond || seen[1] != 32*time.Millisecond {
		t.Fatalf("unexpected elapsed values %v", seen)
	}

	ticker.Stop()
	clk.step(16 * time.Millisecond)
	if len(seen) != 2 {
		t.Errorf("stopped ticker fired: %v", seen)
	}
	if ticker.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v for a stopped ticker", ticker.Elapsed())
	}
}

func TestTicker_StopFromAnotherCallback(t *testing.T) {
	clk := useManualClock(t)
	var second *Ticker
	fired := 0
	first := NewTicker(func(time.Duration) { second.Stop() })
	second = NewTicker(func(time.Duration) { fired++ })
	first.Start()
	second.Start()

	clk.step(16 * time.Millisecond)
	if fired != 0 {
		t.Errorf("ticker stopped earlier in the frame still fired %d times", fired)
	}
}

func TestTimer_FiresOnceAtDeadline(t *testing.T) {
	clk := useManualClock(t)
	fired := 0
	timer := AfterFunc(50*time.Millisecond, func() { fired++ })

	clk.step(48 * time.Millisecond)
	if fired != 0 || !timer.Pending() {
		t.Fatalf("fired early: %d", fired)
	}
	clk.step(16 * time.Millisecond)
	clk.step(16 * time.Millisecond)
	if fired != 1 || timer.Pending() || HasPendingTimers() {
		t.Errorf("fired %d times, pending %v", fired, timer.Pending())
	}
	if timer.Stop() {
		t.Error("Stop after firing should report false")
	}
}

func TestTimer_RunsBeforeTickers(t *testing.T) {
	clk := useManualClock(t)
	var order []string
	NewTicker(func(time.Duration) { order = append(order, "ticker") }).Start()
	AfterFunc(0, func() { order = append(order, "timer") })

	clk.step(16 * time.Millisecond)
	if len(order) != 2 || order[0] != "timer" {
		t.Errorf("order = %v, want timer first", order)
	}
}

func TestTimer_StopCancels(t *testing.T) {
	clk := useManualClock(t)
	fired := false
	timer := AfterFunc(10*time.Millisecond, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("Stop on a pending timer should report true")
	}
	clk.step(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}

	var nilTimer *Timer
	if nilTimer.Stop() || nilTimer.Pending() {
		t.Error("nil timer should be inert")
	}
}

func TestStopAll(t *testing.T) {
	clk := useManualClock(t)
	fired := 0
	NewTicker(func(time.Duration) { fired++ }).Start()
	AfterFunc(0, func() { fired++ })
	StopAll()
	clk.step(16 * time.Millisecond)
	if fired != 0 || HasActiveTickers() || HasPendingTimers() {
		t.Errorf("StopAll left work behind: fired %d", fired)
	}
}
