package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Terminal layout. Each grid cell is drawn two characters wide so cells look
// roughly square.
const (
	hudHeight = 2 // HUD text line plus separator
	cellWidth = 2
	borderW   = 1
)

// TerminalViewport converts a terminal size into the viewport (in cells) that
// the board can occupy. Pair it with a cell size of 1.
func TerminalViewport(screenW, screenH int) (w, h int) {
	return (screenW - 2*borderW) / cellWidth, screenH - hudHeight - 2*borderW
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	boardW := g.grid.Cols*cellWidth + 2*borderW
	boardH := g.grid.Rows + 2*borderW
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight
	dst.DrawBox(core.NewRect(offX, offY, boardW, boardH), core.ColorFrame)

	originX, originY := offX+borderW, offY+borderW
	if g.hasFood {
		g.drawCell(dst, originX, originY, g.food, '●', ' ', core.ColorFood)
	}
	g.renderSnake(dst, originX, originY)

	if g.gameOver {
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Length: %d", g.Title(), g.score, len(g.snake))
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorFrame)
	}
}

// renderSnake draws body segments first so the head stays on top.
func (g *Game) renderSnake(dst *core.Screen, originX, originY int) {
	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, originX, originY, g.snake[i], '█', '█', core.ColorHead)
		} else {
			g.drawCell(dst, originX, originY, g.snake[i], '▓', '▓', core.ColorBody)
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, originX, originY int, c core.Cell, left, right rune, color core.Color) {
	if !g.grid.Contains(c) {
		return
	}
	x := originX + c.X*cellWidth
	y := originY + c.Y
	dst.SetColor(x, y, left, color)
	dst.SetColor(x+1, y, right, color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
