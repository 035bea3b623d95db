package refresh

import (
	"math/rand/v2"
	"testing"
)

func TestThresholdFor(t *testing.T) {
	tests := []struct {
		header int
		ratio  float64
		want   int
	}{
		{100, 1.2, 120},
		{0, 1.2, 0},
		{10, 1.2, 12},
		{7, 1.2, 9},
		{50, 1.2, 60},
		{1, 1.2, 2},
		{100, 1, 100},
		{-5, 1.2, 0},
	}
	for _, tt := range tests {
		if got := thresholdFor(tt.header, tt.ratio); got != tt.want {
			t.Errorf("thresholdFor(%d, %v) = %d, want %d", tt.header, tt.ratio, got, tt.want)
		}
	}
}

func TestCrossedIffAtThreshold(t *testing.T) {
	for header := 0; header <= 200; header += 7 {
		m := offsetModel{resistance: 2}
		m.setHeader(header, 1.2)
		for offset := 0; offset <= 300; offset++ {
			m.current = offset
			want := float64(offset) >= float64(header)*1.2-1e-9
			if got := m.crossed(); got != want {
				t.Fatalf("header %d offset %d: crossed() = %v, want %v", header, offset, got, want)
			}
		}
	}
}

func TestMoveClampsAtZero(t *testing.T) {
	m := offsetModel{resistance: 2}
	if got := m.move(30); got != 30 {
		t.Errorf("move(30) = %d, want 30", got)
	}
	if got := m.move(-50); got != -30 {
		t.Errorf("move(-50) = %d, want -30", got)
	}
	if m.current != 0 {
		t.Errorf("current = %d, want 0", m.current)
	}
	if got := m.move(-1); got != 0 {
		t.Errorf("move(-1) at zero = %d, want 0", got)
	}
}

func TestResistCarriesRemainder(t *testing.T) {
	m := offsetModel{resistance: 2}
	steps := []struct {
		raw  float64
		want int
	}{
		{3, 1},
		{3, 2},
		{1, 0},
		{1, 1},
		{30, 15},
		{-4, 0},
	}
	for i, s := range steps {
		if got := m.resist(s.raw); got != s.want {
			t.Errorf("step %d: resist(%v) = %d, want %d", i, s.raw, got, s.want)
		}
	}
	m.resetRemainder()
	if m.remainder != 0 {
		t.Errorf("remainder = %v after reset", m.remainder)
	}
}

func TestApplyDeltaHideReturnsUnconsumed(t *testing.T) {
	m := offsetModel{resistance: 2, current: 40}
	applied, unconsumed := m.applyDelta(-50)
	if applied != -40 || unconsumed != -10 {
		t.Errorf("applyDelta(-50) = (%d, %d), want (-40, -10)", applied, unconsumed)
	}

	m.current = 40
	applied, unconsumed = m.applyDelta(-15)
	if applied != -15 || unconsumed != 0 {
		t.Errorf("applyDelta(-15) = (%d, %d), want (-15, 0)", applied, unconsumed)
	}

	applied, unconsumed = m.applyDelta(20)
	if applied != 10 || unconsumed != 0 {
		t.Errorf("applyDelta(20) = (%d, %d), want (10, 0)", applied, unconsumed)
	}
}

func TestOffsetNeverNegativeNorAboveRevealed(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for run := 0; run < 200; run++ {
		m := offsetModel{resistance: 2}
		m.setHeader(100, 1.2)
		revealed, net := 0, 0
		for i := 0; i < 100; i++ {
			raw := float64(rng.IntN(121) - 60)
			applied, _ := m.applyDelta(raw)
			if applied > 0 {
				revealed += applied
			}
			net += applied
			if m.current < 0 {
				t.Fatalf("run %d step %d: offset %d is negative", run, i, m.current)
			}
			if m.current > revealed {
				t.Fatalf("run %d step %d: offset %d exceeds revealed total %d", run, i, m.current, revealed)
			}
			if m.current != net {
				t.Fatalf("run %d step %d: offset %d, applied deltas sum to %d", run, i, m.current, net)
			}
		}
		before := m.current
		m.move(-before)
		m.move(-before)
		if m.current != 0 {
			t.Fatalf("run %d: clamped hide left offset %d", run, m.current)
		}
	}
}
