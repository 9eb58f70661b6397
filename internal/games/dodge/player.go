package dodge

import (
	"math"

	"github.com/vovakirdan/dodge-rush/internal/core"
)

// movePlayer applies one tick of the acceleration model for held direction
// axis (-1, 0, 1) on a screen w units wide.
//
// Hitting a wall clamps X but leaves VX alone, so velocity built up against
// a wall is still there when the direction flips.
func (g *Game) movePlayer(axis int, dt, w float64) {
	pc := g.cfg.Player
	p := &g.state.Player

	if axis != 0 {
		p.VX += float64(axis) * pc.Accel * dt
	} else {
		// Decay per millisecond keeps the feel independent of tick size.
		p.VX *= math.Pow(pc.DecayPerMS, dt*1000)
	}

	p.VX = core.ClampF(p.VX, -pc.MaxSpeed, pc.MaxSpeed)
	p.X = core.ClampF(p.X+p.VX*dt, 0, maxPlayerX(w, pc.Width))
}

// playerRect returns the paddle's sprite rectangle on a screen h units tall.
func (g *Game) playerRect(h float64) core.Rect {
	pc := g.cfg.Player
	return core.NewRect(g.state.Player.X, h-pc.BottomOffset, pc.Width, pc.Height)
}

// hitbox returns the forgiving collision rectangle used against obstacles.
func (g *Game) hitbox(h float64) core.Rect {
	return g.playerRect(h).InsetX(g.cfg.Player.HitboxInset)
}

func maxPlayerX(w, width float64) float64 {
	return math.Max(0, w-width)
}
