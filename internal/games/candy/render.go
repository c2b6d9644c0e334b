package candy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/match3"
)

const (
	cellWidth  = 4 // Screen columns per tile
	cellHeight = 2 // Screen rows per tile

	boardW = match3.BoardSize*cellWidth + 2 // +2 for the frame
	boardH = match3.BoardSize*cellHeight + 2

	hudHeight  = 3
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 1
)

// Tile glyphs differ per color so the board reads without color too.
var tileGlyphs = map[match3.Color]rune{
	match3.Red:    '●',
	match3.Blue:   '■',
	match3.Green:  '▲',
	match3.Yellow: '★',
	match3.Purple: '◆',
	match3.Orange: '♥',
}

var tileColors = map[match3.Color]core.Color{
	match3.Red:    core.ColorRed,
	match3.Blue:   core.ColorBlue,
	match3.Green:  core.ColorGreen,
	match3.Yellow: core.ColorYellow,
	match3.Purple: core.ColorPurple,
	match3.Orange: core.ColorOrange,
}

const matchGlyph = '✸'

// layout returns the top-left corner of the HUD and of the board frame.
func (g *Game) layout() (hudY, boardX, boardY int) {
	top := max((g.screenH-minScreenH)/2, 0)
	return top, (g.screenW - boardW) / 2, top + hudHeight
}

// cellAt maps screen coordinates to a board position.
func (g *Game) cellAt(x, y int) (match3.Position, bool) {
	_, bx, by := g.layout()
	ix, iy := x-(bx+1), y-(by+1)
	if ix < 0 || iy < 0 {
		return match3.Position{}, false
	}
	p := match3.Pos(iy/cellHeight, ix/cellWidth)
	return p, p.InBounds()
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		g.drawOverlay(dst, dst.Bounds(), core.Fg(core.ColorLose), "CANNOT START", g.errText())
		return
	}

	hudY, bx, by := g.layout()
	g.renderHUD(dst, hudY, bx)
	g.renderBoard(dst, bx, by)
	g.renderStatus(dst, by+boardH, bx)
	g.renderOverlays(dst, core.NewRect(bx, by, boardW, boardH))
}

func (g *Game) errText() string {
	if g.err == nil {
		return "no levels"
	}
	return g.err.Error()
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", core.Fg(core.ColorLose))
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minScreenW, minScreenH, g.screenW, g.screenH), core.Fg(core.ColorDim))
	dst.DrawTextCentered(y+1, "Please resize terminal", core.Fg(core.ColorDim))
}

// renderHUD draws level, moves and score above the board.
func (g *Game) renderHUD(dst *core.Screen, y, x int) {
	s := g.session
	lvl := s.Level()
	area := core.NewRect(x, y, boardW, hudHeight)

	dst.DrawTextCenteredIn(area, y, "SWEET CANDY MATCH", core.Style{FG: core.ColorAccent, Bold: true})

	levelStr := fmt.Sprintf("Level %d/%d %s", lvl.Number, s.LevelCount(), lvl.Name)
	dst.DrawStyledText(x, y+1, levelStr, core.Fg(core.ColorText))

	movesStyle := core.Fg(core.ColorText)
	if s.MovesLeft() <= 3 {
		movesStyle = core.Style{FG: core.ColorLose, Bold: true}
	}
	movesStr := fmt.Sprintf("Moves %d", s.MovesLeft())
	dst.DrawStyledText(x+boardW-len(movesStr), y+1, movesStr, movesStyle)

	scoreStr := fmt.Sprintf("Score %d/%d ", s.Score(), lvl.TargetScore)
	dst.DrawStyledText(x, y+2, scoreStr, core.Fg(core.ColorText))
	barW := boardW - len(scoreStr)
	g.drawProgress(dst, x+len(scoreStr), y+2, barW, s.Score(), lvl.TargetScore)
}

// drawProgress draws a score bar toward the target.
func (g *Game) drawProgress(dst *core.Screen, x, y, w, value, target int) {
	if w <= 2 || target <= 0 {
		return
	}
	inner := w - 2
	filled := core.Clamp(value*inner/target, 0, inner)
	dst.SetStyled(x, y, '[', core.Fg(core.ColorDim))
	dst.DrawHLine(x+1, y, filled, '█', core.Fg(core.ColorWin))
	dst.DrawHLine(x+1+filled, y, inner-filled, '░', core.Fg(core.ColorDim))
	dst.SetStyled(x+w-1, y, ']', core.Fg(core.ColorDim))
}

// renderBoard draws the frame and every tile.
func (g *Game) renderBoard(dst *core.Screen, bx, by int) {
	dst.DrawBox(core.NewRect(bx, by, boardW, boardH), core.Fg(core.ColorFrame))

	highlight := g.highlighted()
	for r := range match3.BoardSize {
		for c := range match3.BoardSize {
			p := match3.Pos(r, c)
			cx := bx + 1 + c*cellWidth
			cy := by + 1 + r*cellHeight
			g.drawTile(dst, cx, cy, g.display[r][c], p == g.cursor, highlight[p])
		}
	}
}

// highlighted returns the cells drawn as selected: the current selection,
// or the two cells of a swap being shown.
func (g *Game) highlighted() map[match3.Position]bool {
	out := make(map[match3.Position]bool, 2)
	if g.frame != nil && g.turn != nil &&
		(g.frame.Phase == match3.PhaseSwap || g.frame.Phase == match3.PhaseRevert) {
		p1, p2 := g.turn.Positions()
		out[p1], out[p2] = true, true
		return out
	}
	if p, ok := g.session.Selected(); ok {
		out[p] = true
	}
	return out
}

func (g *Game) drawTile(dst *core.Screen, x, y int, cell match3.Cell, cursor, selected bool) {
	st := core.Plain
	glyph := ' '
	switch {
	case cell.Matched:
		st = core.Style{FG: core.ColorMatch, Bold: true}
		glyph = matchGlyph
	case !cell.IsEmpty():
		st = core.Style{FG: tileColors[cell.Color], Bold: cell.New}
		glyph = tileGlyphs[cell.Color]
	}
	switch {
	case selected:
		st.BG = core.ColorSelect
	case cursor:
		st.BG = core.ColorCursor
	}

	for dy := range cellHeight {
		dst.SetStyled(x, y+dy, ' ', st)
		dst.SetStyled(x+1, y+dy, glyph, st)
		dst.SetStyled(x+2, y+dy, glyph, st)
		dst.SetStyled(x+3, y+dy, ' ', st)
	}
}

// renderStatus draws the line under the board: banner, notice or hints.
func (g *Game) renderStatus(dst *core.Screen, y, x int) {
	area := core.NewRect(x, y, boardW, 1)
	switch {
	case g.banner != "":
		dst.DrawTextCenteredIn(area, y, g.banner, core.Style{FG: core.ColorMatch, Bold: true})
	case g.notice != "":
		dst.DrawTextCenteredIn(area, y, g.notice, core.Fg(core.ColorAccent))
	default:
		dst.DrawTextCenteredIn(area, y, "Arrows move  Space select  P pause", core.Fg(core.ColorDim))
	}
}

// renderOverlays draws game state overlays over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	if g.paused {
		g.drawOverlay(dst, board, core.Style{FG: core.ColorAccent, Bold: true}, "PAUSED", "Press P to resume")
		return
	}

	s := g.session
	lvl := s.Level()
	score := fmt.Sprintf("Score: %d / %d", s.Score(), lvl.TargetScore)

	switch s.State() {
	case match3.StateLevelComplete:
		next := "Enter: next level"
		if s.LevelIndex() == s.LevelCount()-1 {
			next = "Final level! Enter: play again"
		}
		g.drawOverlay(dst, board, core.Style{FG: core.ColorWin, Bold: true},
			fmt.Sprintf("LEVEL %d COMPLETE!", lvl.Number),
			score,
			fmt.Sprintf("Best combo: x%d", max(s.MaxCombo(), 1)),
			next,
		)
	case match3.StateGameOver:
		g.drawOverlay(dst, board, core.Style{FG: core.ColorLose, Bold: true},
			"OUT OF MOVES",
			score,
			"R: retry  Esc: menu",
		)
	}
}

// drawOverlay draws a boxed message centered in area. The first line is
// the title and takes titleStyle.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, titleStyle core.Style, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.Style{BG: core.ColorPanel})
	dst.DrawBox(box, core.Style{FG: core.ColorFrame, BG: core.ColorPanel})

	for i, line := range lines {
		st := core.Style{FG: core.ColorText, BG: core.ColorPanel}
		if i == 0 {
			st = titleStyle
			st.BG = core.ColorPanel
		}
		dst.DrawTextCenteredIn(box, box.Y+1+i, line, st)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return strings.Join([]string{
		"Arrows/WASD/HJKL: Move",
		"Space/Enter/Click: Select",
		"N: Next level",
		"R: Retry",
		"P: Pause",
		"Q: Quit",
	}, " | ")
}
