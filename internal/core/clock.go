package core

import "time"

// DefaultMaxFrame caps the wall time a single frame may feed into the
// accumulator, so a stalled terminal does not trigger a burst of catch-up ticks.
const DefaultMaxFrame = 250 * time.Millisecond

// FixedStep is a fixed-timestep accumulator. Frame time is added on every
// rendered frame and drained in whole ticks; the remainder carries over.
type FixedStep struct {
	Tick     time.Duration // Duration of one simulation tick
	MaxFrame time.Duration // Upper bound for one frame's elapsed time (0 = no cap)

	acc time.Duration
}

// NewFixedStep creates an accumulator running tickRate ticks per second.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	return &FixedStep{
		Tick:     time.Second / time.Duration(tickRate),
		MaxFrame: DefaultMaxFrame,
	}
}

// DT returns the tick duration in seconds.
func (s *FixedStep) DT() float64 {
	return s.Tick.Seconds()
}

// Advance feeds elapsed wall time and runs tick once per whole tick held by
// the accumulator. It returns the number of ticks run, which may be zero.
func (s *FixedStep) Advance(elapsed time.Duration, tick func(dt float64)) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if s.MaxFrame > 0 && elapsed > s.MaxFrame {
		elapsed = s.MaxFrame
	}
	s.acc += elapsed

	dt := s.DT()
	n := 0
	for s.acc >= s.Tick {
		tick(dt)
		s.acc -= s.Tick
		n++
	}
	return n
}

// Pending returns the time held in the accumulator.
func (s *FixedStep) Pending() time.Duration {
	return s.acc
}

// Reset drops any accumulated time.
func (s *FixedStep) Reset() {
	s.acc = 0
}
