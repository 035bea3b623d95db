package animation

import (
	"fmt"
	"slices"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
//	         Forward()            tick reaches 1
//	Dismissed ────────► Forward ─────────────────► Completed
//	    ▲                  │
//	    └──── Stop() ──────┘
type AnimationStatus int

const (
	// AnimationDismissed means the animation is not running and did not finish.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward 1.
	AnimationForward
	// AnimationCompleted means the animation ran to 1.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives an eased value from 0 to 1 over Duration.
//
// Listeners observe Value on every frame; status listeners observe the
// transition to AnimationCompleted, which is how callers learn that an
// animation ran to its end rather than being stopped.
type AnimationController struct {
	// Value is the current eased progress in [0, 1].
	Value float64

	// Duration is the length of the animation. A non-positive duration
	// completes on the next frame.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status   AnimationStatus
	ticker   *Ticker
	values   listeners[func()]
	statuses listeners[func(AnimationStatus)]
}

// listeners keeps callbacks in registration order.
type listeners[F any] struct {
	next    int
	entries []listenerEntry[F]
}

type listenerEntry[F any] struct {
	id int
	fn F
}

func (ls *listeners[F]) add(fn F) func() {
	id := ls.next
	ls.next++
	ls.entries = append(ls.entries, listenerEntry[F]{id: id, fn: fn})
	return func() {
		ls.entries = slices.DeleteFunc(ls.entries, func(e listenerEntry[F]) bool { return e.id == id })
	}
}

// snapshot lets callbacks unsubscribe while being notified.
func (ls *listeners[F]) snapshot() []listenerEntry[F] {
	return slices.Clone(ls.entries)
}

// NewAnimationController creates a linear controller for duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{Duration: duration, Curve: LinearCurve}
}

// Forward restarts the animation from 0 and plays it toward 1.
func (c *AnimationController) Forward() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationForward)
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) progress(elapsed time.Duration) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return min(float64(elapsed)/float64(c.Duration), 1)
}

func (c *AnimationController) tick(elapsed time.Duration) {
	t := c.progress(elapsed)
	c.Value = t
	if c.Curve != nil && t < 1 {
		c.Value = c.Curve(t)
	}

	current := c.ticker
	for _, e := range c.values.snapshot() {
		e.fn()
	}
	if c.ticker != current || t < 1 {
		// Still running, or a listener stopped or restarted the animation.
		return
	}
	c.ticker.Stop()
	c.ticker = nil
	c.setStatus(AnimationCompleted)
}

// Stop freezes Value where it is. A running animation becomes dismissed.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.status == AnimationForward {
		c.setStatus(AnimationDismissed)
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether a Forward run is in progress.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward
}

// AddListener registers fn to run after every Value update and returns a
// function that removes it.
func (c *AnimationController) AddListener(fn func()) func() {
	return c.values.add(fn)
}

// AddStatusListener registers fn to run on every status change and returns
// a function that removes it.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	return c.statuses.add(fn)
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, e := range c.statuses.snapshot() {
		e.fn(status)
	}
}

// Dispose stops the animation and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.values = listeners[func()]{}
	c.statuses = listeners[func(AnimationStatus)]{}
}
