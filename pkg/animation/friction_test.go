package animation

import (
	"math"
	"testing"
	"time"
)

func TestFrictionSimulation_Distance(t *testing.T) {
	tests := []struct {
		velocity float64
		want     float64
	}{
		{800, 133.16},
		{-800, -133.16},
		{400, 34.75},
		{0, 0},
	}
	for _, tt := range tests {
		sim := NewFrictionSimulation(0, tt.velocity)
		if got := sim.FinalX(); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("FinalX(v=%v) = %.3f, want %.2f", tt.velocity, got, tt.want)
		}
	}
}

func TestFrictionSimulation_Monotonic(t *testing.T) {
	sim := NewFrictionSimulation(10, 2500)
	prev := sim.X(0)
	if prev != 10 {
		t.Fatalf("X(0) = %v, want 10", prev)
	}
	for ms := 16; ms < 2000; ms += 16 {
		x := sim.X(float64(ms) / 1000)
		if x < prev {
			t.Fatalf("position went backwards at %dms: %v < %v", ms, x, prev)
		}
		prev = x
	}
	end := sim.duration
	if !sim.IsDone(end) || sim.IsDone(end/2) {
		t.Errorf("IsDone boundaries wrong around %v", end)
	}
	if sim.DX(end) != 0 || math.Abs(sim.DX(0)-2500) > 1e-9 {
		t.Errorf("DX(0) = %v, DX(end) = %v", sim.DX(0), sim.DX(end))
	}
	if sim.X(end*3) != sim.FinalX() {
		t.Errorf("position moved after the simulation ended")
	}
}

func TestFrictionSimulation_InvalidInputs(t *testing.T) {
	sim := NewFrictionSimulation(5, math.NaN())
	if sim.FinalX() != 5 || sim.Duration() != 0 {
		t.Errorf("NaN velocity should not move: %v %v", sim.FinalX(), sim.Duration())
	}

	constantOnly := NewFrictionSimulationWith(0, 1000, 0, 0)
	if constantOnly.Duration() <= 0 || constantOnly.Duration() > time.Second {
		t.Errorf("zero drag should fall back to the default constant, lasted %v", constantOnly.Duration())
	}
}

func TestCurves(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":      LinearCurve,
		"decelerate1": Decelerate(1),
		"decelerate2": Decelerate(2),
		"quintic":     Quintic,
		"nonpositive": Decelerate(0),
	}
	for name, curve := range curves {
		if curve(0) != 0 || curve(1) != 1 {
			t.Errorf("%s: endpoints %v %v", name, curve(0), curve(1))
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			if v < prev {
				t.Errorf("%s not monotonic at %d", name, i)
				break
			}
			prev = v
		}
	}
	if got := Decelerate(2)(0.5); math.Abs(got-0.9375) > 1e-12 {
		t.Errorf("Decelerate(2)(0.5) = %v, want 0.9375", got)
	}
	if Decelerate(2)(-1) != 0 || Decelerate(2)(2) != 1 {
		t.Error("curve input should be clamped to [0, 1]")
	}
}
