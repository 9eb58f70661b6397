package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default Dodge Rush configuration.
// Kept in sync with defaults/dodge.yaml.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Player: PlayerConfig{
			Width:        80,
			Height:       18,
			BottomOffset: 40,
			MaxSpeed:     520,
			Accel:        2600,
			DecayPerMS:   0.99,
			HitboxInset:  6,
		},
		Obstacles: ObstacleConfig{
			MinSize:        22,
			MaxSize:        60,
			SpeedJitterMin: 0.9,
			SpeedJitterMax: 1.3,
			SpawnOffset:    10,
			SweepMargin:    5,
			PoolCapacity:   64,
		},
		PowerUps: PowerUpConfig{
			Enabled:       true,
			SpawnInterval: 2.5,
			SpawnChance:   0.30,
			Size:          26,
			FallSpeed:     160,
			MaxShield:     3,
			SlowDuration:  5.0,
		},
		Difficulty: DifficultyConfig{
			StartSpeed:          140,
			AccPerSec:           18,
			BaseInterval:        0.9,
			MinInterval:         0.25,
			SpawnDecrement:      0.02,
			IntervalDecayPerSec: 0.02,
			SlowMultiplier:      0.5,
		},
		Effects: EffectConfig{
			ShieldShake:   4.0,
			BombShake:     6.0,
			GameOverShake: 10.0,
			ShakeDecay:    24.0,
		},
		Scoring: ScoringConfig{
			PointInterval: 0.4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
