package animation

import "math"

// Easing curves transform linear animation progress into eased motion.
//
// Each curve takes t in [0, 1] and returns a value in [0, 1], with f(0) = 0
// and f(1) = 1. Set an [AnimationController]'s Curve field to apply one.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Decelerate returns an ease-out curve 1 - (1-t)^(2*factor). A factor of 1
// is a quadratic ease-out; larger factors front-load more of the motion.
func Decelerate(factor float64) func(float64) float64 {
	if factor <= 0 {
		factor = 1
	}
	return func(t float64) float64 {
		t = clampUnit(t)
		if factor == 1 {
			return 1 - (1-t)*(1-t)
		}
		return 1 - math.Pow(1-t, 2*factor)
	}
}

// Quintic is a fifth-order ease-out, (t-1)^5 + 1.
func Quintic(t float64) float64 {
	t = clampUnit(t) - 1
	return t*t*t*t*t + 1
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
