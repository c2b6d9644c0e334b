package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/candy-match/internal/match3"
	"github.com/vovakirdan/candy-match/internal/storage"
)

// LevelSelectModel lists the campaign levels with their targets and the
// player's best score on each. It is driven by the menu.
type LevelSelectModel struct {
	levels []match3.LevelConfig
	best   map[int]storage.LevelBest // By level number
	cursor int
}

// NewLevelSelectModel creates a level picker. bests may be nil.
func NewLevelSelectModel(levels []match3.LevelConfig, bests []storage.LevelBest) LevelSelectModel {
	m := LevelSelectModel{
		levels: levels,
		best:   make(map[int]storage.LevelBest, len(bests)),
	}
	for _, b := range bests {
		m.best[b.Level] = b
	}
	return m
}

// handleAction applies a menu action. It returns the picked 1-based level,
// or 0, and whether the user backed out.
func (m *LevelSelectModel) handleAction(action MenuAction) (level int, back bool) {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			return m.cursor + 1, false
		}
	case MenuActionBack:
		return 0, true
	}
	return 0, false
}

// View renders the level list.
func (m LevelSelectModel) View(width int, theme Theme) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("SELECT LEVEL"), width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}

		line := fmt.Sprintf("%s%2d. %-14s Target: %-5d Moves: %-3d Colors: %d",
			cursor, lvl.Number, lvl.Name, lvl.TargetScore, lvl.Moves, len(lvl.Colors))
		if best, ok := m.best[lvl.Number]; ok {
			line += fmt.Sprintf("  Best: %d", best.BestScore)
			if best.Wins > 0 {
				line += " *"
			}
		}
		b.WriteString(centerText(style.Render(line), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuDescription.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), width))

	return b.String()
}
