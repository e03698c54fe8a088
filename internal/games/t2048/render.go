package t2048

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellHeight = 2 // Rows per cell including one border row
	hudHeight  = 3 // Title, status line, blank
	footHeight = 3 // Blank, controls, score line
)

// tileColors maps tile values to display colors. Values above the table use
// ColorMagenta.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightGreen,
	512:  core.ColorGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightMagenta,
}

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	if v > 2048 {
		return core.ColorMagenta
	}
	return core.ColorDefault
}

// BoardSize returns the width and height in characters of the framed board.
func (g *Game) BoardSize() (w, h int) {
	n := g.opts.Size
	return n*(g.opts.CellWidth+1) + 1, n*cellHeight + 1
}

// MinScreenSize returns the smallest screen the game can be drawn on.
func (g *Game) MinScreenSize() (w, h int) {
	bw, bh := g.BoardSize()
	return core.Max(bw, utf8.RuneCountInString(g.Controls())) + 2, bh + hudHeight + footHeight
}

// Render draws the board, HUD and any overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	boardW, boardH := g.BoardSize()
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, snap, boardX, boardW)
	g.renderBoard(dst, snap, boardX, boardY)
	g.renderFooter(dst, snap, boardY+boardH)
	renderOverlays(dst, snap, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and status line.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, boardX, boardW int) {
	title := "═══ 2048 ═══"
	titleX := boardX + (boardW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBlue)

	moves := fmt.Sprintf("Moves: %d", snap.Moves)
	dst.DrawText(boardX, 1, moves)

	goal := fmt.Sprintf("Goal: %d", snap.Target)
	goalColor := core.ColorDefault
	if snap.Reached {
		goalColor = core.ColorBrightGreen
	}
	goalX := core.Max(boardX+boardW-len(goal), boardX+len(moves)+1)
	dst.DrawTextColored(goalX, 1, goal, goalColor)
}

// renderBoard draws the double-line frame, inner grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	n := snap.Size
	stride := g.opts.CellWidth + 1

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*stride
			py := boardY + y*cellHeight

			dst.SetColored(px, py, junction(x, y, n), core.ColorGray)

			// Horizontal line to the right
			if x < n {
				h := '─'
				if y == 0 || y == n {
					h = '═'
				}
				for i := 1; i < stride; i++ {
					dst.SetColored(px+i, py, h, core.ColorGray)
				}
			}

			// Vertical line down
			if y < n {
				v := '│'
				if x == 0 || x == n {
					v = '║'
				}
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, v, core.ColorGray)
				}
			}
		}
	}

	for y, row := range snap.Cells {
		for x, val := range row {
			if val == 0 {
				continue
			}
			valStr := tileLabel(val, g.opts.CellWidth)
			padLeft := (g.opts.CellWidth - len(valStr)) / 2
			cellX := boardX + x*stride + 1 + padLeft
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX, cellY, valStr, TileColor(val))
		}
	}
}

// tileLabel formats v to fit in width columns. Values too wide to print in
// full use a k or M suffix; anything still too wide is cut.
func tileLabel(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) <= width {
		return s
	}
	for _, unit := range []struct {
		div    int
		suffix string
	}{{1 << 10, "k"}, {1 << 20, "M"}} {
		if v%unit.div != 0 {
			continue
		}
		if short := strconv.Itoa(v/unit.div) + unit.suffix; len(short) <= width {
			return short
		}
	}
	return s[:width]
}

// junction picks the frame character at grid intersection (x, y).
func junction(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '╔'
	case y == 0 && x == n:
		return '╗'
	case y == n && x == 0:
		return '╚'
	case y == n && x == n:
		return '╝'
	case y == 0:
		return '╤'
	case y == n:
		return '╧'
	case x == 0:
		return '╟'
	case x == n:
		return '╢'
	default:
		return '┼'
	}
}

// renderFooter draws the controls and the current score (the max tile).
func (g *Game) renderFooter(dst *core.Screen, snap Snapshot, y int) {
	dst.DrawTextCentered(y+1, g.Controls())

	label := "Current Score: "
	score := strconv.Itoa(snap.MaxTile)
	x := (dst.Width() - len(label) - len(score)) / 2
	dst.DrawText(x, y+2, label)
	dst.DrawTextColored(x+len(label), y+2, score, core.ColorGreen)
}

// renderOverlays draws state overlays centered on the board.
func renderOverlays(dst *core.Screen, snap Snapshot, board core.Rect) {
	switch snap.State {
	case StateGameOver:
		drawOverlay(dst, board, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", snap.MaxTile),
			"Press r to restart")
	case StatePaused:
		drawOverlay(dst, board, core.ColorYellow, "PAUSED", "Press p to resume")
	}
}

// drawOverlay draws a boxed, centered block of text.
func drawOverlay(dst *core.Screen, area core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(cx-len(line)/2, box.Y+1+i, line, color)
	}
}

// DefaultControls is the footer hint used when Options.Controls is empty.
const DefaultControls = "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.opts.Controls != "" {
		return g.opts.Controls
	}
	return DefaultControls
}
