package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-match/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1}
}

func sendMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestMenuCampaign(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Done() || m.Choice() != MenuChoicePlay || m.Level() != 0 {
		t.Errorf("choice = %v level %d, want play from the start", m.Choice(), m.Level())
	}
}

func TestMenuLevelSelect(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, testConfig()),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.Done() {
		t.Fatal("opening the level list should not finish the menu")
	}
	if !strings.Contains(m.View(), "SELECT LEVEL") {
		t.Error("level list not shown")
	}

	// Back returns to the main list
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "SELECT LEVEL") {
		t.Error("esc should leave the level list")
	}

	m = sendMenu(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.Choice() != MenuChoicePlay || m.Level() != 3 {
		t.Errorf("choice = %v level %d, want play level 3", m.Choice(), m.Level())
	}
}

func TestMenuScoresAndQuit(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if m.Choice() != MenuChoiceScores {
		t.Errorf("tab choice = %v, want scores", m.Choice())
	}

	m = sendMenu(t, NewMenuModel(nil, testConfig()), runeKey('q'))
	if m.Choice() != MenuChoiceQuit {
		t.Errorf("q choice = %v, want quit", m.Choice())
	}
}

func TestMenuResize(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, testConfig()), tea.WindowSizeMsg{Width: 120, Height: 50})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config size = %dx%d, want 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}
