package animation

import (
	"math"
	"time"
)

// Default deceleration parameters, matching the ballistic scroll feel used
// throughout the framework.
const (
	DefaultFrictionConstant = 2200.0
	DefaultFrictionLinear   = 0.385
)

// FrictionSimulation models a one-dimensional fling slowing down under a
// constant plus velocity-proportional drag:
//
//	dv/dt = -sign(v) * (Constant + Linear*|v|)
//
// The motion is solved in closed form, so X and DX can be sampled at any
// elapsed time without accumulating per-frame error.
type FrictionSimulation struct {
	start    float64
	velocity float64
	constant float64
	linear   float64
	duration float64
}

// NewFrictionSimulation creates a simulation starting at position with the
// given velocity (units per second) and the default drag parameters.
func NewFrictionSimulation(position, velocity float64) *FrictionSimulation {
	return NewFrictionSimulationWith(position, velocity, DefaultFrictionConstant, DefaultFrictionLinear)
}

// NewFrictionSimulationWith creates a simulation with explicit drag terms.
// Non-positive drag terms are treated as zero; if both are zero the default
// constant term is used so the simulation always terminates.
func NewFrictionSimulationWith(position, velocity, constant, linear float64) *FrictionSimulation {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}
	constant = math.Max(constant, 0)
	linear = math.Max(linear, 0)
	if constant == 0 && linear == 0 {
		constant = DefaultFrictionConstant
	}
	s := &FrictionSimulation{
		start:    position,
		velocity: velocity,
		constant: constant,
		linear:   linear,
	}
	s.duration = s.stopTime()
	return s
}

func (s *FrictionSimulation) stopTime() float64 {
	speed := math.Abs(s.velocity)
	if speed == 0 {
		return 0
	}
	if s.linear == 0 {
		return speed / s.constant
	}
	if s.constant == 0 {
		// Pure exponential decay never reaches zero; stop below one unit per second.
		if speed <= 1 {
			return 0
		}
		return math.Log(speed) / s.linear
	}
	k := s.constant / s.linear
	return math.Log((speed+k)/k) / s.linear
}

// speedAt returns the unsigned speed at time t (seconds).
func (s *FrictionSimulation) speedAt(t float64) float64 {
	if t >= s.duration {
		return 0
	}
	speed := math.Abs(s.velocity)
	if s.linear == 0 {
		return speed - s.constant*t
	}
	k := s.constant / s.linear
	return (speed+k)*math.Exp(-s.linear*t) - k
}

// distanceAt returns the unsigned distance travelled by time t (seconds).
func (s *FrictionSimulation) distanceAt(t float64) float64 {
	t = math.Min(math.Max(t, 0), s.duration)
	speed := math.Abs(s.velocity)
	if s.linear == 0 {
		return speed*t - s.constant*t*t/2
	}
	k := s.constant / s.linear
	return (speed+k)*(1-math.Exp(-s.linear*t))/s.linear - k*t
}

func (s *FrictionSimulation) sign() float64 {
	if s.velocity < 0 {
		return -1
	}
	return 1
}

// X returns the position after elapsed seconds.
func (s *FrictionSimulation) X(t float64) float64 {
	return s.start + s.sign()*s.distanceAt(t)
}

// DX returns the signed velocity after elapsed seconds.
func (s *FrictionSimulation) DX(t float64) float64 {
	return s.sign() * math.Max(s.speedAt(t), 0)
}

// IsDone reports whether the motion has stopped at time t (seconds).
func (s *FrictionSimulation) IsDone(t float64) bool {
	return t >= s.duration
}

// FinalX returns the position at which the motion stops.
func (s *FrictionSimulation) FinalX() float64 {
	return s.X(s.duration)
}

// Duration returns how long the motion lasts.
func (s *FrictionSimulation) Duration() time.Duration {
	return time.Duration(s.duration * float64(time.Second))
}
