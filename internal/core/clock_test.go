package core

import (
	"testing"
	"time"
)

func TestFixedStepRunsWholeTicks(t *testing.T) {
	s := NewFixedStep(100) // 10ms ticks

	ticks := 0
	n := s.Advance(25*time.Millisecond, func(dt float64) {
		ticks++
		if dt != 0.01 {
			t.Errorf("dt = %v, expected 0.01", dt)
		}
	})

	if n != 2 || ticks != 2 {
		t.Errorf("Advance(25ms) ran %d ticks (returned %d), expected 2", ticks, n)
	}
	if s.Pending() != 5*time.Millisecond {
		t.Errorf("Pending() = %v, expected 5ms", s.Pending())
	}
}

func TestFixedStepCarriesRemainder(t *testing.T) {
	s := NewFixedStep(100)

	total := 0
	for i := 0; i < 4; i++ {
		total += s.Advance(4*time.Millisecond, func(float64) {})
	}

	// 16ms accumulated -> one tick, 6ms left over
	if total != 1 {
		t.Errorf("expected 1 tick from 4 frames of 4ms, got %d", total)
	}
	if s.Pending() != 6*time.Millisecond {
		t.Errorf("Pending() = %v, expected 6ms", s.Pending())
	}
}

func TestFixedStepZeroTicks(t *testing.T) {
	s := NewFixedStep(60)
	n := s.Advance(time.Millisecond, func(float64) {
		t.Error("tick should not run")
	})
	if n != 0 {
		t.Errorf("expected 0 ticks, got %d", n)
	}
}

func TestFixedStepCapsFrame(t *testing.T) {
	s := NewFixedStep(100)
	s.MaxFrame = 50 * time.Millisecond

	n := s.Advance(10*time.Second, func(float64) {})
	if n != 5 {
		t.Errorf("capped frame should run 5 ticks, got %d", n)
	}

	s.Reset()
	if s.Pending() != 0 {
		t.Errorf("Reset should clear accumulator, got %v", s.Pending())
	}
}

func TestFixedStepNegativeElapsed(t *testing.T) {
	s := NewFixedStep(100)
	if n := s.Advance(-time.Second, func(float64) {}); n != 0 {
		t.Errorf("negative elapsed should not tick, got %d", n)
	}
	if s.Pending() != 0 {
		t.Errorf("negative elapsed should not change accumulator, got %v", s.Pending())
	}
}
