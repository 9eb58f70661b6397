package dodge

import (
	"github.com/vovakirdan/dodge-rush/internal/core"
	"github.com/vovakirdan/dodge-rush/internal/entity"
)

// Obstacle is a falling square the player must avoid.
type Obstacle struct {
	Rect core.Rect
	VY   float64
}

// Fall implements entity.Body.
func (o *Obstacle) Fall(dt float64) {
	o.Rect.Y += o.VY * dt
}

// Top implements entity.Body.
func (o *Obstacle) Top() float64 {
	return o.Rect.Y
}

// ObstaclePool is the pool type holding obstacles.
type ObstaclePool = entity.Pool[Obstacle, *Obstacle]

// updateObstacles runs the spawn policy and moves every obstacle.
func (g *Game) updateObstacles(dt, slow, w, h float64) {
	s := &g.state

	s.SpawnTimer += dt
	if s.SpawnTimer >= g.curve.SpawnInterval(s.SpawnInterval, s.Elapsed, slow) {
		s.SpawnTimer = 0
		g.spawnObstacle(w)
		s.SpawnInterval = g.curve.NextBaseInterval(s.SpawnInterval)
	}

	g.obstacles.UpdateAndSweep(h, dt)
}

// spawnObstacle drops one obstacle of random size and speed just above the screen.
func (g *Game) spawnObstacle(w float64) {
	oc := g.cfg.Obstacles

	size := g.uniform(oc.MinSize, oc.MaxSize)
	x := g.uniform(0, w-size)
	vy := g.state.FallSpeed * g.uniform(oc.SpeedJitterMin, oc.SpeedJitterMax)

	g.obstacles.Spawn(Obstacle{
		Rect: core.NewRect(x, -size-oc.SpawnOffset, size, size),
		VY:   vy,
	})
}

// uniform returns a value in [lo, hi). A collapsed or inverted range yields lo,
// floored at 0 for spawn positions on screens narrower than the object.
func (g *Game) uniform(lo, hi float64) float64 {
	if hi <= lo {
		if hi < 0 && lo == 0 {
			return 0
		}
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}
