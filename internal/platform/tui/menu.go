package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/games/candy"
	"github.com/vovakirdan/candy-match/internal/storage"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

type menuItem struct {
	title string
	desc  string
}

var menuItems = []menuItem{
	{"Play Campaign", "Start at level 1"},
	{"Select Level...", "Jump to any level"},
	{"High Scores", "Best runs and scores per level"},
	{"Quit", ""},
}

const (
	menuItemCampaign = iota
	menuItemLevels
	menuItemScores
	menuItemQuit
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor        int
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	theme         Theme
	levelSelect   LevelSelectModel
	inLevelSelect bool
	choice        MenuChoice
	level         int // 1-based start level, 0 for the first
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var bests []storage.LevelBest
	if store != nil {
		// Best scores are decoration; a failed query just hides them
		bests, _ = store.BestLevelScores(candy.GameID)
	}

	return MenuModel{
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		theme:       CurrentTheme(),
		levelSelect: NewLevelSelectModel(candy.CurrentSettings().Levels, bests),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		return m.finish(MenuChoiceQuit, 0)
	}

	if m.inLevelSelect {
		level, back := m.levelSelect.handleAction(action)
		switch {
		case back:
			m.inLevelSelect = false
		case level > 0:
			return m.finish(MenuChoicePlay, level)
		}
		return m, nil
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		return m.finish(MenuChoiceScores, 0)

	case MenuActionSelect:
		switch m.cursor {
		case menuItemCampaign:
			return m.finish(MenuChoicePlay, 0)
		case menuItemLevels:
			m.inLevelSelect = true
		case menuItemScores:
			return m.finish(MenuChoiceScores, 0)
		case menuItemQuit:
			return m.finish(MenuChoiceQuit, 0)
		}
	}

	return m, nil
}

func (m MenuModel) finish(choice MenuChoice, level int) (tea.Model, tea.Cmd) {
	m.choice = choice
	m.level = level
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}
	if m.inLevelSelect {
		return m.levelSelect.View(m.width, m.theme)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S W E E T   C A N D Y   M A T C H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Swap neighbors, line up three, chain the cascades"), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+item.title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if desc := menuItems[m.cursor].desc; desc != "" {
		b.WriteString(centerText(m.theme.MenuDescription.Render(desc), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuDescription.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Done reports whether the user made a choice.
func (m MenuModel) Done() bool {
	return m.choice != MenuChoiceNone
}

// Choice returns what the user picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Level returns the 1-based start level picked, or 0 for the first.
func (m MenuModel) Level() int {
	return m.level
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape codes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Level  int
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || !m.Done() {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		Level:  m.Level(),
		Config: m.Config(),
	}, nil
}
