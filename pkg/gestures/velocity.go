package gestures

import (
	"math"
	"time"
)

// VelocityHorizon is how far back samples contribute to a velocity estimate.
const VelocityHorizon = 100 * time.Millisecond

type velocitySample struct {
	time time.Duration
	y    float64
}

// VelocityTracker estimates vertical pointer velocity in pixels per second
// from timestamped samples.
type VelocityTracker struct {
	// Max clamps the magnitude of the estimate. Zero means unclamped.
	Max float64

	samples []velocitySample
}

// NewVelocityTracker creates a tracker clamped to max pixels per second.
func NewVelocityTracker(max float64) *VelocityTracker {
	return &VelocityTracker{Max: max}
}

// Add records a position sample.
func (v *VelocityTracker) Add(at time.Duration, y float64) {
	if n := len(v.samples); n > 0 && at < v.samples[n-1].time {
		// Out-of-order timestamps start a new estimate.
		v.samples = v.samples[:0]
	}
	v.samples = append(v.samples, velocitySample{time: at, y: y})
	v.prune()
}

// Velocity returns the displacement over the samples inside the horizon
// divided by their time span. Positive values point down the screen.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := (last.time - first.time).Seconds()
	if dt <= 0 {
		return 0
	}
	velocity := (last.y - first.y) / dt
	if v.Max > 0 {
		velocity = math.Max(-v.Max, math.Min(v.Max, velocity))
	}
	return velocity
}

// Clear drops all samples.
func (v *VelocityTracker) Clear() {
	v.samples = v.samples[:0]
}

func (v *VelocityTracker) prune() {
	newest := v.samples[len(v.samples)-1].time
	drop := 0
	for drop < len(v.samples)-1 && newest-v.samples[drop].time > VelocityHorizon {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}
