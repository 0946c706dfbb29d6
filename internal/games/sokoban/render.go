package sokoban

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

const keyHints = "Arrows/WASD: move  R: restart  N/]: next  [: prev  P: pause  Esc: menu"

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)

	// Footer
	if dst.Height() > hudHeight+1 {
		dst.DrawTextCentered(dst.Height()-1, keyHints)
	}

	// Draw overlays
	switch {
	case g.state.Won:
		g.renderOverlay(dst,
			fmt.Sprintf("Level %d solved!", g.state.LevelIndex+1),
			fmt.Sprintf("%d moves, %d pushes. N: next  R: replay", g.moves, g.pushes))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, g.HUD())
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// mapOrigin returns the screen position of board cell (0,0).
func (g *Game) mapOrigin(dst *core.Screen) (int, int) {
	level := g.Level()
	areaH := dst.Height() - hudHeight - footerHeight
	ox := (dst.Width() - level.Width()*CellWidth) / 2
	oy := hudHeight + (areaH-level.Height())/2
	return max(ox, 0), max(oy, hudHeight)
}

// renderMap draws every in-bounds cell through Classify.
func (g *Game) renderMap(dst *core.Screen) {
	level := g.Level()
	ox, oy := g.mapOrigin(dst)

	for y := 0; y < level.Height(); y++ {
		for x := 0; x < level.RowWidth(y); x++ {
			p := Pos(x, y)
			glyph := g.theme.Glyph(Classify(g.state, level, p), level.IsGoal(p))
			dst.DrawTextColored(ox+x*CellWidth, oy+y, glyph.Text, glyph.Color)
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(maxLen+4, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
