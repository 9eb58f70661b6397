package core

// Geometry reports the current playfield size in world units.
// It is consulted every tick, so a resize takes effect on the next tick.
type Geometry interface {
	ScreenSize() (w, h float64)
}

// Viewport is a Geometry with a settable size.
// Share a *Viewport to let the platform resize a running game.
type Viewport struct {
	W, H float64
}

// ScreenSize implements Geometry.
func (v Viewport) ScreenSize() (float64, float64) {
	return v.W, v.H
}

// BestStore persists the best score. Implementations never fail:
// LoadBest returns 0 when nothing usable is stored and SaveBest is best-effort.
type BestStore interface {
	LoadBest() int
	SaveBest(score int)
}

// World units covered by one terminal cell.
const (
	CellW = 10.0
	CellH = 25.0
)

// WorldViewport returns the Viewport covering a cols x rows terminal.
func WorldViewport(cols, rows int) Viewport {
	return Viewport{W: float64(cols) * CellW, H: float64(rows) * CellH}
}
