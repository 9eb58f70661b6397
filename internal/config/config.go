// Package config provides YAML-based game configuration loading and
// the difficulty curve for Dodge Rush.
package config

// DodgeConfig contains all tunables for Dodge Rush.
type DodgeConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Effects    EffectConfig     `yaml:"effects"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// PlayerConfig defines the paddle and its movement model.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from screen bottom to paddle top
	MaxSpeed     float64 `yaml:"max_speed"`
	Accel        float64 `yaml:"accel"`
	DecayPerMS   float64 `yaml:"decay_per_ms"` // Velocity factor kept per millisecond without input
	HitboxInset  float64 `yaml:"hitbox_inset"` // Forgiveness on each horizontal side
}

// ObstacleConfig defines obstacle spawning and sweeping.
type ObstacleConfig struct {
	MinSize        float64 `yaml:"min_size"`
	MaxSize        float64 `yaml:"max_size"`
	SpeedJitterMin float64 `yaml:"speed_jitter_min"`
	SpeedJitterMax float64 `yaml:"speed_jitter_max"`
	SpawnOffset    float64 `yaml:"spawn_offset"` // Extra distance above the screen top
	SweepMargin    float64 `yaml:"sweep_margin"` // Distance below the screen before recycling
	PoolCapacity   int     `yaml:"pool_capacity"`
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawn rolls
	SpawnChance   float64 `yaml:"spawn_chance"`   // Probability per roll
	Size          float64 `yaml:"size"`
	FallSpeed     float64 `yaml:"fall_speed"`
	MaxShield     int     `yaml:"max_shield"`
	SlowDuration  float64 `yaml:"slow_duration"`
}

// DifficultyConfig defines the time-driven difficulty curve.
type DifficultyConfig struct {
	StartSpeed          float64 `yaml:"start_speed"`
	AccPerSec           float64 `yaml:"acc_per_sec"`
	BaseInterval        float64 `yaml:"base_interval"`
	MinInterval         float64 `yaml:"min_interval"`
	SpawnDecrement      float64 `yaml:"spawn_decrement"`        // Interval shrink per obstacle spawned
	IntervalDecayPerSec float64 `yaml:"interval_decay_per_sec"` // Interval shrink per second of play
	SlowMultiplier      float64 `yaml:"slow_multiplier"`
}

// EffectConfig defines shake magnitudes.
type EffectConfig struct {
	ShieldShake   float64 `yaml:"shield_shake"`
	BombShake     float64 `yaml:"bomb_shake"`
	GameOverShake float64 `yaml:"game_over_shake"`
	ShakeDecay    float64 `yaml:"shake_decay"` // Units per second
}

// ScoringConfig defines how survival time converts into points.
type ScoringConfig struct {
	PointInterval float64 `yaml:"point_interval"` // Seconds of play per point
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset; unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyEasy:
		d.StartSpeed *= 0.8
		d.AccPerSec *= 0.75
	case DifficultyHard:
		d.StartSpeed *= 1.25
		d.AccPerSec *= 1.5
	case DifficultyFixed:
		d.AccPerSec = 0
		d.SpawnDecrement = 0
		d.IntervalDecayPerSec = 0
	}
}

// Validate replaces values that would break the simulation with defaults.
func (c *DodgeConfig) Validate() {
	def := DefaultDodgeConfig()

	if c.Player.Width <= 0 {
		c.Player.Width = def.Player.Width
	}
	if c.Player.Height <= 0 {
		c.Player.Height = def.Player.Height
	}
	if c.Player.MaxSpeed <= 0 {
		c.Player.MaxSpeed = def.Player.MaxSpeed
	}
	if c.Player.DecayPerMS <= 0 || c.Player.DecayPerMS > 1 {
		c.Player.DecayPerMS = def.Player.DecayPerMS
	}
	if c.Player.HitboxInset < 0 {
		c.Player.HitboxInset = 0
	}

	if c.Obstacles.MinSize <= 0 {
		c.Obstacles.MinSize = def.Obstacles.MinSize
	}
	if c.Obstacles.MaxSize < c.Obstacles.MinSize {
		c.Obstacles.MaxSize = c.Obstacles.MinSize
	}
	if c.Obstacles.SpeedJitterMax < c.Obstacles.SpeedJitterMin {
		c.Obstacles.SpeedJitterMax = c.Obstacles.SpeedJitterMin
	}
	if c.Obstacles.PoolCapacity <= 0 {
		c.Obstacles.PoolCapacity = def.Obstacles.PoolCapacity
	}

	if c.PowerUps.SpawnInterval <= 0 {
		c.PowerUps.SpawnInterval = def.PowerUps.SpawnInterval
	}
	if c.PowerUps.Size <= 0 {
		c.PowerUps.Size = def.PowerUps.Size
	}
	if c.PowerUps.MaxShield < 0 {
		c.PowerUps.MaxShield = 0
	}

	if c.Difficulty.MinInterval <= 0 {
		c.Difficulty.MinInterval = def.Difficulty.MinInterval
	}
	if c.Difficulty.BaseInterval < c.Difficulty.MinInterval {
		c.Difficulty.BaseInterval = c.Difficulty.MinInterval
	}
	if c.Difficulty.SlowMultiplier <= 0 || c.Difficulty.SlowMultiplier > 1 {
		c.Difficulty.SlowMultiplier = def.Difficulty.SlowMultiplier
	}

	if c.Scoring.PointInterval <= 0 {
		c.Scoring.PointInterval = def.Scoring.PointInterval
	}
}
