package dodge

import (
	"math"
)

// accrueScore converts Playing time into points. The accumulator keeps the
// remainder, so the score depends only on total time and not on tick size.
func (g *Game) accrueScore(dt float64) {
	s := &g.state
	interval := g.cfg.Scoring.PointInterval

	s.ScoreAcc += dt
	for s.ScoreAcc >= interval-scoreEpsilon {
		s.ScoreAcc -= interval
		s.Score++
	}
	if s.ScoreAcc < 0 {
		s.ScoreAcc = 0
	}
}

// scoreEpsilon absorbs float drift from summing many small ticks.
const scoreEpsilon = 1e-9

// resolveCollision checks the player hitbox against obstacles and reports
// whether the round ended. Only the first overlapping obstacle in pool
// order counts, so a tick ends a round at most once.
func (g *Game) resolveCollision(h float64) bool {
	hit := g.hitbox(h)
	handle, _, ok := g.obstacles.First(func(o *Obstacle) bool {
		return o.Rect.Intersects(hit)
	})
	if !ok {
		return false
	}

	s := &g.state
	if s.Shield > 0 {
		g.obstacles.Recycle(handle)
		s.Shield--
		s.Shake = math.Max(s.Shake, g.cfg.Effects.ShieldShake)
		return false
	}

	g.endRound()
	return true
}

// endRound commits the best score and kicks off the game-over shake.
func (g *Game) endRound() {
	s := &g.state
	if s.Score > s.Best {
		s.Best = s.Score
	}
	g.best.SaveBest(s.Best)
	s.Shake = g.cfg.Effects.GameOverShake
}

// decayShake eases the camera shake toward zero.
func (g *Game) decayShake(dt float64) {
	g.state.Shake = math.Max(0, g.state.Shake-g.cfg.Effects.ShakeDecay*dt)
}
