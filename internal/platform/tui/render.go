package tui

import (
	"strings"

	"github.com/vovakirdan/candy-match/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		cells := s.RowCells(y)
		x := 0
		for x < len(cells) {
			start := cells[x].Style

			var run strings.Builder
			for x < len(cells) && cells[x].Style == start {
				run.WriteRune(cells[x].Rune)
				x++
			}

			if start == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(theme.Style(start).Render(run.String()))
		}
	}
	return sb.String()
}
