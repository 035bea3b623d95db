package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
)

func TestNewFrameTester_Defaults(t *testing.T) {
	tester := NewFrameTesterWithT(t)

	if tester.FrameDuration != DefaultFrameDuration {
		t.Errorf("expected frame duration %v, got %v", DefaultFrameDuration, tester.FrameDuration)
	}
	if tester.clock == nil {
		t.Fatal("expected fake clock to be set")
	}
}

func TestPumpFrames_AdvancesClockAndTickers(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	var frames []time.Duration
	ticker := animation.NewTicker(func(elapsed time.Duration) { frames = append(frames, elapsed) })
	ticker.Start()

	tester.PumpFrames(3)

	if got := tester.Clock().Since(); got != 3*DefaultFrameDuration {
		t.Errorf("expected clock at 48ms, got %v", got)
	}
	if len(frames) != 3 || frames[2] != 3*DefaultFrameDuration {
		t.Errorf("unexpected ticker frames %v", frames)
	}

	tester.Pump()
	if len(frames) != 4 || frames[3] != frames[2] {
		t.Errorf("Pump should not advance the clock: %v", frames)
	}
}

func TestPumpFor_FiresTimers(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	fired := false
	animation.AfterFunc(100*time.Millisecond, func() { fired = true })

	tester.PumpFor(96 * time.Millisecond)
	if fired {
		t.Fatal("timer fired before its deadline")
	}
	tester.PumpFor(DefaultFrameDuration)
	if !fired {
		t.Error("timer did not fire after its deadline")
	}
}

func TestPumpAndSettle_StopsWhenIdle(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	var ticker *animation.Ticker
	ticker = animation.NewTicker(func(elapsed time.Duration) {
		if elapsed >= 100*time.Millisecond {
			ticker.Stop()
		}
	})
	ticker.Start()

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if got := tester.Clock().Since(); got != 112*time.Millisecond {
		t.Errorf("expected to settle at 112ms, got %v", got)
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	animation.NewTicker(func(time.Duration) {}).Start()

	err := tester.PumpAndSettle(100 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Fatalf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestPumpAndSettle_IgnoresPendingTimers(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	fired := false
	animation.AfterFunc(time.Second, func() { fired = true })

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if fired || tester.Clock().Since() != 0 {
		t.Errorf("settling should not wait for timers")
	}
}

func TestCleanup_RestoresClock(t *testing.T) {
	tester := NewFrameTester()
	animation.NewTicker(func(time.Duration) {}).Start()
	animation.AfterFunc(time.Second, func() {})

	tester.Cleanup()

	if animation.HasActiveTickers() || animation.HasPendingTimers() {
		t.Error("Cleanup left tickers or timers behind")
	}
	if animation.Now().Equal(Epoch) {
		t.Error("Cleanup did not restore the previous clock")
	}
}
