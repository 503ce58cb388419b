package snake

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.world == nil {
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	v := g.viewport()
	w := g.world

	for _, s := range w.Trail() {
		color := core.ColorBody
		if s.TTL <= 1 {
			color = core.ColorFading
		}
		v.drawCell(dst, s.Cell, '▓', color)
	}
	if f, ok := w.Food(); ok {
		v.drawCell(dst, f.Cell, '◆', core.ColorFood)
	}
	for _, p := range w.Projectiles() {
		v.drawShot(dst, p.Pos, g.cellSize)
	}
	v.drawCell(dst, w.Actor().Cell, '█', core.ColorHead)

	switch {
	case w.Halted():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d, hit %s. Press R", w.Score(), w.Cause()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score, length, interval := 0, 0, time.Duration(0)
	if g.world != nil {
		score = g.world.Score()
		length = g.world.Actor().Length
		interval = g.world.Interval()
	}
	rate := 0.0
	if interval > 0 {
		rate = float64(time.Second) / float64(interval)
	}
	hud := fmt.Sprintf(" %s - Score: %d  Length: %d  Speed: %.1f/s", g.Title(), score, length, rate)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box)
	dst.DrawTextColored((dst.Width()-len([]rune(line1)))/2, box.Y+1, line1, core.ColorAlert)
	dst.DrawTextCentered(box.Y+3, line2)
}

// viewport maps grid cells to screen columns and rows. Grid y grows
// upwards, screen rows grow downwards.
type viewport struct {
	lo, hi core.Point
}

func (g *Game) viewport() viewport {
	lo, hi := g.PlayBounds().CellRange(g.cellSize)
	return viewport{lo: lo, hi: hi}
}

func (v viewport) toScreen(cell core.Point) (x, y int, ok bool) {
	if cell.X < v.lo.X || cell.X > v.hi.X || cell.Y < v.lo.Y || cell.Y > v.hi.Y {
		return 0, 0, false
	}
	x = (cell.X - v.lo.X) * cellCols
	y = hudHeight + (v.hi.Y - cell.Y)
	return x, y, true
}

func (v viewport) drawCell(dst *core.Screen, cell core.Point, r rune, c core.Color) {
	x, y, ok := v.toScreen(cell)
	if !ok {
		return
	}
	for i := range cellCols {
		dst.SetColored(x+i, y, r, c)
	}
}

func (v viewport) drawShot(dst *core.Screen, pos core.Vec, size float64) {
	cell := core.Point{
		X: int(math.Floor(pos.X / size)),
		Y: int(math.Floor(pos.Y / size)),
	}
	x, y, ok := v.toScreen(cell)
	if !ok {
		return
	}
	dst.SetColored(x, y, '•', core.ColorProjectile)
}
