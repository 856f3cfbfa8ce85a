package tilefall

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tilefall/internal/core"
	"github.com/vovakirdan/tilefall/internal/engine"
)

const (
	cellWidth  = 7 // Screen cells per column
	cellHeight = 2 // Screen cells per tile row
	hudHeight  = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.cfg.Board.ColumnCount*cellWidth + 2
	boardH := g.rows()*cellHeight + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY, boardW, boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score line above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d  Best: %d", g.st.Score, g.st.BestScore)
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	if g.mode == ModeZen {
		infoStr = fmt.Sprintf("Max: %d", g.st.Board.MaxValue())
	} else {
		infoStr = fmt.Sprintf("Level %d", g.st.Level)
	}
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX+len(scoreStr)+2 {
		infoX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(infoX, 1, infoStr)
}

// renderBoard draws the playfield box, the danger line and all tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	// Danger line: two tile heights below the top of the board.
	dangerRow := boardY + 1 + 2*cellHeight - 1
	for x := boardX + 1; x < boardX+boardW-1; x++ {
		if dst.GetCell(x, dangerRow).Rune == ' ' {
			dst.SetCell(x, dangerRow, '·', ColorDanger)
		}
	}

	for _, c := range g.st.Board.Columns {
		for _, t := range c.Tiles {
			g.renderTile(dst, t, boardX, boardY, boardH)
		}
	}
}

// ColorDanger marks the game-over threshold line.
const ColorDanger = core.ColorGray

// renderTile draws one tile as a colored block with its value centered.
func (g *Game) renderTile(dst *core.Screen, t engine.Tile, boardX, boardY, boardH int) {
	// Fractional row position, measured from the floor.
	rowPos := t.Y / g.cfg.Board.TileSize

	innerBottom := boardY + boardH - 2
	tileTop := innerBottom - int(rowPos*cellHeight+0.5) - (cellHeight - 1)
	tileLeft := boardX + 1 + t.Column*cellWidth

	color := core.TileColor(t.Value)
	fill := '█'
	if !t.Settled {
		fill = '▒'
	}

	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			y := tileTop + dy
			if y <= boardY || y > innerBottom {
				continue
			}
			dst.SetCell(tileLeft+dx, y, fill, color)
		}
	}

	// Value label on the tile's middle row.
	valStr := strconv.Itoa(t.Value)
	labelY := tileTop + cellHeight/2
	if labelY > boardY && labelY <= innerBottom {
		labelX := tileLeft + (cellWidth-len(valStr))/2
		dst.DrawTextColored(labelX, labelY, valStr, core.ColorWhite)
	}
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.invariantErr != nil {
		g.drawOverlay(dst, centerX, centerY, "SIMULATION ERROR", g.invariantErr.Error(), "Press R to restart")
		return
	}

	if g.st.GameOver() {
		maxStr := fmt.Sprintf("Max tile: %d", g.st.Board.MaxValue())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "A/D or ←/→: Steer tile | P: Pause | R: Restart | Q: Quit"
}
