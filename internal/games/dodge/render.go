package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge-rush/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '▀'
	ObstacleChar = '█'
	FloorChar    = '─'
)

// Render draws the current game state to the screen.
// World coordinates are scaled onto however many cells dst has.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.geom.ScreenSize()
	if w <= 0 || h <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := view{
		sx:    float64(dst.Width()) / w,
		sy:    float64(dst.Height()) / h,
		shake: g.shakeOffset(),
	}

	g.obstacles.Each(func(o *Obstacle) bool {
		x, y, cw, ch := v.cells(o.Rect)
		dst.FillRect(x, y, cw, ch, ObstacleChar, obstacleColor(o.Rect.W))
		return true
	})

	g.powerups.Each(func(p *PowerUp) bool {
		x, y, cw, ch := v.cells(p.Rect)
		dst.FillRect(x, y, cw, ch, p.Kind.Glyph(), p.Kind.Color())
		return true
	})

	if g.state.Mode != ModeMenu {
		g.drawPlayer(dst, v, h)
	}

	g.drawHUD(dst)

	switch g.state.Mode {
	case ModeMenu:
		g.drawCenteredMessage(dst, g.title,
			fmt.Sprintf("Best: %d", g.state.Best),
			"SPACE to start  |  H help  |  Q to quit")
	case ModePaused:
		g.drawCenteredMessage(dst, "PAUSED",
			"P resume  |  R restart  |  M menu")
	case ModeGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", g.state.Score, g.state.Best),
			"R restart  |  M menu")
	}
}

// view maps world rectangles to cells.
type view struct {
	sx, sy float64
	shake  int // Horizontal cell offset
}

// cells returns the cell rectangle covering r, at least one cell in each direction.
func (v view) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X*v.sx)) + v.shake
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right()*v.sx)) + v.shake
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0)
}

func (g *Game) drawPlayer(dst *core.Screen, v view, h float64) {
	color := core.ColorCyan
	if g.state.Shield > 0 {
		color = core.ColorSky
	}
	if g.state.Mode == ModeGameOver {
		color = core.ColorRed
	}

	r := g.playerRect(h)
	x, y, cw, _ := v.cells(r)
	dst.DrawHLine(x, y, cw, PlayerChar, color)

	floor := int(math.Ceil(r.Bottom() * v.sy))
	if floor < dst.Height() {
		dst.DrawHLine(0, floor, dst.Width(), FloorChar, core.ColorGray)
	}
}

// shakeOffset returns the horizontal camera offset in cells. The sign flips
// every few ticks so the screen jitters while the magnitude decays.
func (g *Game) shakeOffset() int {
	n := int(math.Round(g.state.Shake / shakeUnitsPerCell))
	if n == 0 {
		return 0
	}
	if (g.tick/4)%2 == 1 {
		return -n
	}
	return n
}

const shakeUnitsPerCell = 5.0

func obstacleColor(size float64) core.Color {
	switch {
	case size >= 50:
		return core.ColorRed
	case size >= 36:
		return core.ColorMagenta
	default:
		return core.ColorPink
	}
}

// ControlsHint is the bottom HUD line shown while playing.
const ControlsHint = "←/→ move  P pause  R restart  ESC menu"

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  Best: %d ", g.state.Score, g.state.Best), core.ColorWhite)
	if g.state.Mode == ModePlaying && dst.Height() > 2 {
		dst.DrawTextCentered(dst.Height()-1, ControlsHint, core.ColorGray)
	}

	status := ""
	if g.state.Shield > 0 {
		status += fmt.Sprintf(" Shield x%d ", g.state.Shield)
	}
	if g.state.SlowLeft > 0 {
		status += fmt.Sprintf(" Slow %.1fs ", g.state.SlowLeft)
	}
	if status != "" {
		dst.DrawText(dst.Width()-len(status)-1, 0, status, core.ColorGold)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, core.ColorDefault)
	}
}
