package refresh

import "math"

// offsetModel is the single owner of the reveal offset. Every change goes
// through move, which keeps the offset at or above zero.
type offsetModel struct {
	current    int
	header     int
	threshold  int
	resistance float64
	// remainder carries the fractional part of resisted deltas so slow drags
	// still reveal.
	remainder float64
}

// thresholdFor returns the smallest whole offset at or above header * ratio,
// tolerating float error so that 100 * 1.2 is exactly 120.
func thresholdFor(header int, ratio float64) int {
	if header <= 0 {
		return 0
	}
	return int(math.Ceil(float64(header)*ratio - 1e-9))
}

func (m *offsetModel) setHeader(height int, ratio float64) {
	m.header = max(height, 0)
	m.threshold = thresholdFor(m.header, ratio)
}

// move shifts the offset by delta, clamped at zero, and returns the applied
// amount.
func (m *offsetModel) move(delta int) int {
	next := max(m.current+delta, 0)
	applied := next - m.current
	m.current = next
	return applied
}

// resist converts a downward finger distance into a reveal distance.
func (m *offsetModel) resist(raw float64) int {
	if raw <= 0 {
		return 0
	}
	scaled := raw/m.resistance + m.remainder
	whole := math.Floor(scaled)
	m.remainder = scaled - whole
	return int(whole)
}

func (m *offsetModel) resetRemainder() {
	m.remainder = 0
}

// applyDelta applies a finger delta (positive reveals). Reveals are resisted;
// hides apply directly, consuming up to the current offset. The part of a
// hide the offset could not absorb is returned as unconsumed.
func (m *offsetModel) applyDelta(raw float64) (applied, unconsumed int) {
	if raw > 0 {
		return m.move(m.resist(raw)), 0
	}
	delta := int(math.Round(raw))
	applied = m.move(delta)
	return applied, delta - applied
}

func (m *offsetModel) crossed() bool {
	return m.current >= m.threshold
}
