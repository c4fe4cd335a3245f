package match3

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/one-more-match3/internal/core"
	m3 "github.com/vovakirdan/one-more-match3/internal/match3"
)

const (
	cellWidth  = 3 // marker, token, marker
	hudHeight  = 3
	footHeight = 2
	hudWidth   = 32 // room for the score and moves line
)

// layout is where the board sits for the current size and screen.
type layout struct {
	boardX, boardY int // top-left corner of the border
	boardW, boardH int
	hudX, hudW     int
	minW, minH     int
}

func (g *Game) layout() layout {
	bw := g.size*cellWidth + 2
	bh := g.size + 2
	l := layout{
		boardW: bw,
		boardH: bh,
		hudW:   max(bw, hudWidth),
		boardY: hudHeight,
	}
	l.minW = l.hudW
	l.minH = hudHeight + bh + footHeight
	l.boardX = (g.screenW - bw) / 2
	l.hudX = (g.screenW - l.hudW) / 2
	return l
}

// cellAt maps a screen point to the board cell drawn there.
func (g *Game) cellAt(pt core.Point) (m3.Position, bool) {
	l := g.layout()
	innerX, innerY := l.boardX+1, l.boardY+1
	if pt.X < innerX || pt.Y < innerY {
		return m3.Position{}, false
	}
	p := m3.P(pt.Y-innerY, (pt.X-innerX)/cellWidth)
	return p, g.grid.InBounds(p)
}

var tokenColors = map[m3.Token]core.Color{
	m3.Blue:   core.ColorBlue,
	m3.Green:  core.ColorGreen,
	m3.Orange: core.ColorOrange,
	m3.Purple: core.ColorMagenta,
	m3.Red:    core.ColorRed,
	m3.Yellow: core.ColorYellow,
	m3.Gray:   core.ColorGray,
}

// TokenColor returns the screen color used for a token.
func TokenColor(t m3.Token) core.Color {
	if c, ok := tokenColors[t]; ok {
		return c
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderFooter(dst, l)
	g.renderOverlays(dst, l)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	l := g.layout()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorBrightWhite)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d for a %dx%d board", l.minW, l.minH, g.size, g.size), core.ColorGray)
	dst.DrawTextCentered(y+1, "Resize the terminal or press - to shrink", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, l layout) {
	dst.DrawTextCentered(0, "ONE MORE MATCH3", core.ColorBrightWhite)

	dst.DrawTextColor(l.hudX, 1, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)

	var right string
	if g.mode == ModeEndless {
		right = fmt.Sprintf("Moves: %d", g.movesUsed)
	} else {
		right = fmt.Sprintf("Moves: %d/%d", g.movesLeft(), g.cfg.Moves.Limit)
	}
	dst.DrawTextColor(l.hudX+l.hudW-utf8.RuneCountInString(right), 1, right, core.ColorWhite)

	info := fmt.Sprintf("%dx%d", g.size, g.size)
	if g.last.Passes > 0 {
		info += fmt.Sprintf("  last: %d matches, %d passes", g.last.TotalMatches, g.last.Passes)
	}
	dst.DrawTextColor(l.hudX, 2, info, core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawBox(core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH), core.ColorGray)

	for _, pos := range g.grid.Positions() {
		x := l.boardX + 1 + pos.Col*cellWidth
		y := l.boardY + 1 + pos.Row

		tok := g.grid.Get(pos)
		glyph := '●'
		switch {
		case g.hasArmed && pos == g.armed:
			glyph = '◆'
		case g.hasArmed && !m3.IsAdjacent(g.armed, pos):
			glyph = '○' // not a legal swap target
		}
		dst.SetColor(x+1, y, glyph, TokenColor(tok))

		switch {
		case pos == g.cursor:
			dst.SetColor(x, y, '[', core.ColorBrightWhite)
			dst.SetColor(x+2, y, ']', core.ColorBrightWhite)
		case g.hasArmed && pos == g.armed:
			dst.SetColor(x, y, '<', core.ColorBrightYellow)
			dst.SetColor(x+2, y, '>', core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, l layout) {
	y := l.boardY + l.boardH
	switch {
	case g.message != "":
		dst.DrawTextCentered(y, g.message, core.ColorBrightYellow)
	case g.hasArmed:
		dst.DrawTextCentered(y, fmt.Sprintf("%v armed, pick a neighbour", g.armed), core.ColorWhite)
	}
	dst.DrawTextCentered(y+1, g.Controls(), core.ColorDim)
}

func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	centerX := l.boardX + l.boardW/2
	centerY := l.boardY + l.boardH/2

	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.gameOver && g.mode == ModeEndless:
		drawOverlay(dst, centerX, centerY, "RUN FINISHED", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.gameOver:
		drawOverlay(dst, centerX, centerY, "OUT OF MOVES", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the key hints for the game.
func (g *Game) Controls() string {
	if g.mode == ModeEndless {
		return "Arrows: Move  Space: Select  +/-: Size  F: Finish  Q: Quit"
	}
	return "Arrows: Move  Space: Select  +/-: Size  P: Pause  Q: Quit"
}

// Resize adapts the layout to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}
