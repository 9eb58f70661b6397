package config

import "testing"

func TestCurveSlowMultiplier(t *testing.T) {
	c := NewCurve(DefaultDodgeConfig().Difficulty)

	if c.SlowMultiplier(0) != 1.0 {
		t.Error("no slow time left should give multiplier 1")
	}
	if c.SlowMultiplier(0.01) != 0.5 {
		t.Error("active slow should give multiplier 0.5")
	}
}

func TestCurveFallSpeed(t *testing.T) {
	c := NewCurve(DefaultDodgeConfig().Difficulty)

	tests := []struct {
		elapsed, slow, want float64
	}{
		{0, 1, 140},
		{10, 1, 320},
		{10, 0.5, 160},
	}
	for _, tc := range tests {
		if got := c.FallSpeed(tc.elapsed, tc.slow); !approx(got, tc.want) {
			t.Errorf("FallSpeed(%v, %v) = %v, expected %v", tc.elapsed, tc.slow, got, tc.want)
		}
	}
}

func TestCurveSpawnInterval(t *testing.T) {
	c := NewCurve(DefaultDodgeConfig().Difficulty)

	tests := []struct {
		name                string
		base, elapsed, slow float64
		want                float64
	}{
		{"start", 0.9, 0, 1, 0.9},
		{"after ten seconds", 0.9, 10, 1, 0.7},
		{"slowed is less frequent", 0.9, 10, 0.5, 1.4},
		{"floored", 0.3, 30, 1, 0.25},
		{"floor applies after slow scaling", 0.3, 10, 0.5, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.SpawnInterval(tc.base, tc.elapsed, tc.slow); !approx(got, tc.want) {
				t.Errorf("SpawnInterval = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCurveNextBaseInterval(t *testing.T) {
	c := NewCurve(DefaultDodgeConfig().Difficulty)

	if got := c.NextBaseInterval(0.9); !approx(got, 0.88) {
		t.Errorf("NextBaseInterval(0.9) = %v, expected 0.88", got)
	}
	if got := c.NextBaseInterval(0.26); got != 0.25 {
		t.Errorf("NextBaseInterval should floor at 0.25, got %v", got)
	}
}
