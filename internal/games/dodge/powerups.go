package dodge

import (
	"math"

	"github.com/vovakirdan/dodge-rush/internal/core"
	"github.com/vovakirdan/dodge-rush/internal/entity"
)

// Kind represents the type of a power-up.
type Kind int

const (
	KindShield Kind = iota // Absorbs one hit
	KindSlow               // Halves fall speed for a while
	KindBomb               // Clears every obstacle
	kindCount              // Sentinel for counting kinds
)

// String returns the name of the power-up kind.
func (k Kind) String() string {
	switch k {
	case KindShield:
		return "Shield"
	case KindSlow:
		return "Slow"
	case KindBomb:
		return "Bomb"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindShield:
		return 'S'
	case KindSlow:
		return '~'
	case KindBomb:
		return '*'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindShield:
		return core.ColorSky
	case KindSlow:
		return core.ColorGreen
	case KindBomb:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Rect core.Rect
	VY   float64
	Kind Kind
}

// Fall implements entity.Body.
func (p *PowerUp) Fall(dt float64) {
	p.Rect.Y += p.VY * dt
}

// Top implements entity.Body.
func (p *PowerUp) Top() float64 {
	return p.Rect.Y
}

// PowerUpPool is the pool type holding power-ups.
type PowerUpPool = entity.Pool[PowerUp, *PowerUp]

// updatePowerUps rolls for a spawn, moves power-ups and collects at most one.
func (g *Game) updatePowerUps(dt, w, h float64) {
	pc := g.cfg.PowerUps
	if !pc.Enabled {
		return
	}
	s := &g.state

	s.PowerUpTimer += dt
	if s.PowerUpTimer >= pc.SpawnInterval {
		s.PowerUpTimer = 0
		if g.rng.Float64() < pc.SpawnChance {
			g.spawnPowerUp(Kind(g.rng.Intn(int(kindCount))), w)
		}
	}

	g.powerups.UpdateAndSweep(h, dt)

	if kind, ok := g.pickAt(g.playerRect(h)); ok {
		g.applyPowerUp(kind)
	}
}

// spawnPowerUp drops a power-up of the given kind just above the screen.
// Power-ups fall at a constant speed unaffected by difficulty.
func (g *Game) spawnPowerUp(kind Kind, w float64) {
	pc := g.cfg.PowerUps
	g.powerups.Spawn(PowerUp{
		Rect: core.NewRect(g.uniform(0, w-pc.Size), -pc.Size-g.cfg.Obstacles.SpawnOffset, pc.Size, pc.Size),
		VY:   pc.FallSpeed,
		Kind: kind,
	})
}

// pickAt collects the first live power-up overlapping r, in pool order.
// Others overlapping r stay live for a later tick.
func (g *Game) pickAt(r core.Rect) (Kind, bool) {
	h, p, ok := g.powerups.First(func(p *PowerUp) bool {
		return p.Rect.Intersects(r)
	})
	if !ok {
		return 0, false
	}
	kind := p.Kind
	g.powerups.Recycle(h)
	return kind, true
}

// applyPowerUp applies the effect of a collected power-up.
func (g *Game) applyPowerUp(kind Kind) {
	s := &g.state
	switch kind {
	case KindShield:
		s.Shield = core.Clamp(s.Shield+1, 0, g.cfg.PowerUps.MaxShield)
	case KindSlow:
		// Refresh, not stack.
		s.SlowLeft = g.cfg.PowerUps.SlowDuration
	case KindBomb:
		g.obstacles.ClearAll()
		s.Shake = math.Max(s.Shake, g.cfg.Effects.BombShake)
	}
}
