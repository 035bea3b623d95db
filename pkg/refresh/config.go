package refresh

import (
	"fmt"
	"time"

	"github.com/go-drift/pullrefresh/pkg/errors"
)

// Default tuning values.
const (
	DefaultResistance        = 2.0
	DefaultThresholdRatio    = 1.2
	DefaultTouchSlop         = 8
	DefaultMinFlingVelocity  = 300.0
	DefaultMaxFlingVelocity  = 8000.0
	DefaultCompleteDelay     = 800 * time.Millisecond
	DefaultStartDuration     = 250 * time.Millisecond
	DefaultRefreshDuration   = 150 * time.Millisecond
	DefaultMaxSettleDuration = 250 * time.Millisecond
)

// Config tunes the gesture and animation behavior of a Layout.
// Zero fields take their defaults.
type Config struct {
	// Resistance divides finger motion while revealing the header. Must be > 1.
	Resistance float64 `yaml:"resistance"`
	// ThresholdRatio scales the header height into the refresh threshold.
	ThresholdRatio float64 `yaml:"threshold_ratio"`
	// TouchSlop is the distance in pixels a pointer travels before a drag starts.
	TouchSlop int `yaml:"touch_slop"`
	// MinFlingVelocity is the release speed (px/s) below which no fling happens.
	MinFlingVelocity float64 `yaml:"min_fling_velocity"`
	// MaxFlingVelocity clamps release speed (px/s).
	MaxFlingVelocity float64 `yaml:"max_fling_velocity"`
	// CompleteDelay keeps the completed indicator visible before hiding it.
	CompleteDelay time.Duration `yaml:"complete_delay"`
	// StartDuration is the time to settle one header height back to zero.
	StartDuration time.Duration `yaml:"start_duration"`
	// RefreshDuration is the time to travel one header height to the refresh position.
	RefreshDuration time.Duration `yaml:"refresh_duration"`
	// MaxSettleDuration caps both settle animations.
	MaxSettleDuration time.Duration `yaml:"max_settle_duration"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Resistance:        DefaultResistance,
		ThresholdRatio:    DefaultThresholdRatio,
		TouchSlop:         DefaultTouchSlop,
		MinFlingVelocity:  DefaultMinFlingVelocity,
		MaxFlingVelocity:  DefaultMaxFlingVelocity,
		CompleteDelay:     DefaultCompleteDelay,
		StartDuration:     DefaultStartDuration,
		RefreshDuration:   DefaultRefreshDuration,
		MaxSettleDuration: DefaultMaxSettleDuration,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Resistance == 0 {
		c.Resistance = d.Resistance
	}
	if c.ThresholdRatio == 0 {
		c.ThresholdRatio = d.ThresholdRatio
	}
	if c.TouchSlop == 0 {
		c.TouchSlop = d.TouchSlop
	}
	if c.MinFlingVelocity == 0 {
		c.MinFlingVelocity = d.MinFlingVelocity
	}
	if c.MaxFlingVelocity == 0 {
		c.MaxFlingVelocity = d.MaxFlingVelocity
	}
	if c.CompleteDelay == 0 {
		c.CompleteDelay = d.CompleteDelay
	}
	if c.StartDuration == 0 {
		c.StartDuration = d.StartDuration
	}
	if c.RefreshDuration == 0 {
		c.RefreshDuration = d.RefreshDuration
	}
	if c.MaxSettleDuration == 0 {
		c.MaxSettleDuration = d.MaxSettleDuration
	}
	return c
}

// Validate fills defaults and reports the first out-of-range value.
func (c Config) Validate() error {
	c = c.withDefaults()
	invalid := func(format string, args ...any) error {
		return errors.Config("refresh.Config.Validate",
			fmt.Errorf("%w: "+format, append([]any{errors.ErrInvalidConfig}, args...)...))
	}
	switch {
	case c.Resistance <= 1:
		return invalid("resistance must be greater than 1, got %v", c.Resistance)
	case c.ThresholdRatio < 1:
		return invalid("threshold_ratio must be at least 1, got %v", c.ThresholdRatio)
	case c.TouchSlop < 0:
		return invalid("touch_slop must not be negative, got %d", c.TouchSlop)
	case c.MinFlingVelocity < 0:
		return invalid("min_fling_velocity must not be negative, got %v", c.MinFlingVelocity)
	case c.MaxFlingVelocity < c.MinFlingVelocity:
		return invalid("max_fling_velocity %v is below min_fling_velocity %v", c.MaxFlingVelocity, c.MinFlingVelocity)
	case c.CompleteDelay < 0, c.StartDuration < 0, c.RefreshDuration < 0, c.MaxSettleDuration < 0:
		return invalid("durations must not be negative")
	}
	return nil
}
