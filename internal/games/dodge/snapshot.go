package dodge

// Snapshot captures the game state and live entities for determinism testing.
type Snapshot struct {
	Tick      uint64
	State     State
	Obstacles []Obstacle
	PowerUps  []PowerUp
}

// Snapshot returns a copy of the current state. Entities are listed in pool order.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Obstacles: make([]Obstacle, 0, g.obstacles.Live()),
		PowerUps:  make([]PowerUp, 0, g.powerups.Live()),
	}
	g.obstacles.Each(func(o *Obstacle) bool {
		snap.Obstacles = append(snap.Obstacles, *o)
		return true
	})
	g.powerups.Each(func(p *PowerUp) bool {
		snap.PowerUps = append(snap.PowerUps, *p)
		return true
	})
	return snap
}
