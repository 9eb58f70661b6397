package dodge

import (
	"math"

	"github.com/vovakirdan/dodge-rush/internal/core"
)

// transition is what a mode handler asks of the state machine.
type transition struct {
	to    Mode
	reset bool // Start a fresh round before entering to
}

// apply performs a transition.
func (g *Game) apply(tr transition) {
	if tr.reset {
		g.resetRound()
	}
	g.state.Mode = tr.to
}

func (g *Game) stepMenu(in core.InputFrame) transition {
	if in.Has(core.ActionStart) {
		return transition{to: ModePlaying, reset: true}
	}
	return transition{to: ModeMenu}
}

func (g *Game) stepPaused(in core.InputFrame) transition {
	switch {
	case in.Has(core.ActionPause):
		return transition{to: ModePlaying}
	case in.Has(core.ActionRestart):
		return transition{to: ModePlaying, reset: true}
	case in.Has(core.ActionMenu):
		return transition{to: ModeMenu}
	}
	return transition{to: ModePaused}
}

func (g *Game) stepGameOver(in core.InputFrame) transition {
	switch {
	case in.Has(core.ActionRestart):
		return transition{to: ModePlaying, reset: true}
	case in.Has(core.ActionMenu):
		return transition{to: ModeMenu}
	}
	return transition{to: ModeGameOver}
}

// stepPlaying simulates one tick of a round. A pause press takes effect
// before anything moves.
func (g *Game) stepPlaying(in core.InputFrame, dt float64) transition {
	if in.Has(core.ActionPause) {
		return transition{to: ModePaused}
	}

	// Geometry may change between ticks.
	w, h := g.geom.ScreenSize()
	s := &g.state

	s.Elapsed += dt
	s.SlowLeft = math.Max(0, s.SlowLeft-dt)
	slow := g.curve.SlowMultiplier(s.SlowLeft)

	g.movePlayer(in.Axis, dt, w)

	s.FallSpeed = g.curve.FallSpeed(s.Elapsed, slow)
	g.updateObstacles(dt, slow, w, h)
	g.updatePowerUps(dt, w, h)

	g.accrueScore(dt)
	if g.resolveCollision(h) {
		return transition{to: ModeGameOver}
	}
	return transition{to: ModePlaying}
}
