package config

import "math"

// Curve computes the time-driven difficulty of a round.
type Curve struct {
	cfg DifficultyConfig
}

// NewCurve creates a difficulty curve.
func NewCurve(cfg DifficultyConfig) *Curve {
	return &Curve{cfg: cfg}
}

// Config returns the curve parameters.
func (c *Curve) Config() DifficultyConfig {
	return c.cfg
}

// SlowMultiplier returns the slow factor while a Slow effect has time left, else 1.
func (c *Curve) SlowMultiplier(slowLeft float64) float64 {
	if slowLeft > 0 {
		return c.cfg.SlowMultiplier
	}
	return 1.0
}

// FallSpeed returns the base fall speed for newly spawned obstacles.
func (c *Curve) FallSpeed(elapsed, slow float64) float64 {
	return (c.cfg.StartSpeed + elapsed*c.cfg.AccPerSec) * slow
}

// SpawnInterval returns the effective seconds between obstacle spawns.
// Dividing by the slow multiplier makes spawns rarer while slowed, while the
// elapsed term keeps shrinking the unscaled base.
func (c *Curve) SpawnInterval(base, elapsed, slow float64) float64 {
	return math.Max(c.cfg.MinInterval, (base-elapsed*c.cfg.IntervalDecayPerSec)/slow)
}

// NextBaseInterval returns the stored interval after one obstacle spawned.
func (c *Curve) NextBaseInterval(base float64) float64 {
	return math.Max(c.cfg.MinInterval, base-c.cfg.SpawnDecrement)
}
