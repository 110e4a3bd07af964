package flood

import (
	"fmt"
	"strings"

	"wordflood/internal/core"
)

// Board cell geometry on screen: each cell is cellW wide including its left
// border, plus one closing border column.
const (
	cellW  = 4
	cellH  = 2
	boardW = BoardSize*cellW + 1
	boardH = BoardSize*cellH + 1
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	offX := (dst.Width() - boardW) / 2
	offY := 3
	g.renderBoard(dst, offX, offY)
	g.renderWordLine(dst, offY+boardH+1)
	g.renderFoundWords(dst, offY+boardH+3)

	if g.message != "" {
		dst.DrawTextColored((dst.Width()-len(g.message))/2, offY+boardH+2, g.message, core.ColorBrightYellow)
	}

	switch {
	case g.hasFlooded:
		g.renderOverlay(dst, "The board flooded!", fmt.Sprintf("Final Score: %d - press R to play again", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar with score and the flood gauge.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Words: %d  ", g.Title(), g.score, len(g.foundWords))
	dst.DrawText(0, 0, hud)
	g.renderFloodGauge(dst, len(hud), 0)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderFloodGauge draws "Flood [######----] 47%".
func (g *Game) renderFloodGauge(dst *core.Screen, x, y int) {
	const barW = 18
	fullness := g.board.Fullness()
	filled := int(fullness / 100 * barW)

	color := core.ColorBrightBlue
	if fullness >= 75 {
		color = core.ColorBrightRed
	} else if fullness >= 50 {
		color = core.ColorOrange
	}

	dst.DrawText(x, y, "Flood [")
	dst.DrawTextColored(x+7, y, strings.Repeat("█", filled), color)
	dst.DrawText(x+7+filled, y, strings.Repeat("░", barW-filled))
	dst.DrawText(x+7+barW, y, fmt.Sprintf("] %3.0f%%", fullness))
}

// renderBoard draws the letter grid with borders, the selection highlights
// and (grid mode) the cursor.
func (g *Game) renderBoard(dst *core.Screen, offX, offY int) {
	// Horizontal borders
	for row := 0; row <= BoardSize; row++ {
		y := offY + row*cellH
		for col := 0; col < BoardSize; col++ {
			x := offX + col*cellW
			dst.Set(x, y, g.borderJunction(row, col))
			for i := 1; i < cellW; i++ {
				dst.Set(x+i, y, '─')
			}
		}
		dst.Set(offX+boardW-1, y, g.borderJunction(row, BoardSize))
	}

	// Cells
	for row := 0; row < BoardSize; row++ {
		y := offY + row*cellH + 1
		for col := 0; col <= BoardSize; col++ {
			dst.Set(offX+col*cellW, y, '│')
		}
		for col := 0; col < BoardSize; col++ {
			p := Pos{Row: row, Col: col}
			x := offX + col*cellW + 1

			letter := g.board.Letter(p)
			ch := '·'
			color := core.ColorGray
			if letter != 0 {
				ch = letter
				color = core.ColorBrightWhite
			}
			if g.resolver.Selected(p) {
				color = core.ColorBrightYellow
			}

			if g.mode == ModeGrid && p == g.cursor {
				dst.SetCell(x, y, '[', core.ColorBrightCyan)
				dst.SetCell(x+1, y, ch, color)
				dst.SetCell(x+2, y, ']', core.ColorBrightCyan)
			} else {
				dst.SetCell(x+1, y, ch, color)
			}
		}
	}
}

// borderJunction picks the box-drawing character for a border intersection.
func (g *Game) borderJunction(row, col int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == BoardSize:
		return '┐'
	case row == BoardSize && col == 0:
		return '└'
	case row == BoardSize && col == BoardSize:
		return '┘'
	case row == 0:
		return '┬'
	case row == BoardSize:
		return '┴'
	case col == 0:
		return '├'
	case col == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// renderWordLine shows the in-progress word and the mode's controls.
func (g *Game) renderWordLine(dst *core.Screen, y int) {
	word := g.resolver.Word()
	var line string
	if g.mode == ModeTyped {
		line = fmt.Sprintf("Type a word: %s_", word)
	} else if word == "" {
		line = "Select letters to form a word"
	} else {
		line = fmt.Sprintf("Word: %s", word)
	}
	if g.resolver.Validating() {
		line += "  (checking...)"
	}
	dst.DrawTextCentered(y, line)
}

// renderFoundWords shows the tail of the session's accepted words.
func (g *Game) renderFoundWords(dst *core.Screen, y int) {
	if len(g.foundWords) == 0 {
		return
	}
	const show = 6
	start := core.Max(0, len(g.foundWords)-show)
	line := "Found: " + strings.Join(g.foundWords[start:], " ")
	dst.DrawTextCentered(y, line)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
