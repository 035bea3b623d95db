// Package testing provides deterministic frame and gesture drivers for
// pull-to-refresh tests.
//
// # Quick Start
//
// Create a tester, touch a target and pump frames:
//
//	func TestPullReleases(t *testing.T) {
//	    tester := refreshtest.NewFrameTesterWithT(t)
//	    finger := tester.Touch(layout)
//
//	    finger.Down(200, 100)
//	    finger.MoveBy(10)  // crosses touch slop
//	    finger.MoveBy(30)
//	    finger.Up()
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Time
//
// The tester installs a [FakeClock] as the animation clock. Every pointer
// helper advances the clock by one frame before sending its event, so
// velocities computed from event timestamps are predictable: a MoveBy(dy)
// corresponds to dy / FrameDuration pixels per second.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import refreshtest "github.com/go-drift/pullrefresh/pkg/testing"
package testing
