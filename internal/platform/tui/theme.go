package tui

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candy-match/internal/core"
)

// Theme maps screen color slots to terminal colors and styles the menus.
type Theme struct {
	Name string

	// Colors holds one terminal color per core.Color slot.
	// An empty entry leaves the terminal default.
	Colors [core.ColorCount]lipgloss.Color

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// Style converts a cell style to a lipgloss style.
func (t Theme) Style(st core.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c := t.color(st.FG); c != "" {
		s = s.Foreground(c)
	}
	if c := t.color(st.BG); c != "" {
		s = s.Background(c)
	}
	if st.Bold {
		s = s.Bold(true)
	}
	return s
}

func (t Theme) color(c core.Color) lipgloss.Color {
	if int(c) >= len(t.Colors) {
		return ""
	}
	return t.Colors[c]
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	var colors [core.ColorCount]lipgloss.Color
	// Candy colors - vibrant and distinct
	colors[core.ColorRed] = "196"
	colors[core.ColorBlue] = "39"
	colors[core.ColorGreen] = "46"
	colors[core.ColorYellow] = "226"
	colors[core.ColorPurple] = "135"
	colors[core.ColorOrange] = "208"

	colors[core.ColorText] = "255"
	colors[core.ColorDim] = "245"
	colors[core.ColorAccent] = "51"
	colors[core.ColorFrame] = "240"
	colors[core.ColorCursor] = "238"
	colors[core.ColorSelect] = "57"
	colors[core.ColorMatch] = "231"
	colors[core.ColorWin] = "46"
	colors[core.ColorLose] = "196"
	colors[core.ColorPanel] = "235"

	return Theme{
		Name:            "default",
		Colors:          colors,
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Colors[core.ColorRed] = "199"    // Neon pink
	theme.Colors[core.ColorBlue] = "87"    // Neon cyan
	theme.Colors[core.ColorGreen] = "118"  // Neon green
	theme.Colors[core.ColorYellow] = "227" // Neon yellow
	theme.Colors[core.ColorPurple] = "171" // Neon purple
	theme.Colors[core.ColorOrange] = "214"
	theme.Colors[core.ColorSelect] = "199"
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.Colors[core.ColorRed] = "218"
	theme.Colors[core.ColorBlue] = "123"
	theme.Colors[core.ColorGreen] = "157"
	theme.Colors[core.ColorYellow] = "229"
	theme.Colors[core.ColorPurple] = "183"
	theme.Colors[core.ColorOrange] = "216"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true)
	return theme
}

// MonochromeTheme returns a grayscale theme. Tiles stay apart by glyph.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Colors[core.ColorRed] = "255"
	theme.Colors[core.ColorBlue] = "250"
	theme.Colors[core.ColorGreen] = "245"
	theme.Colors[core.ColorYellow] = "252"
	theme.Colors[core.ColorPurple] = "247"
	theme.Colors[core.ColorOrange] = "243"
	theme.Colors[core.ColorAccent] = "255"
	theme.Colors[core.ColorWin] = "255"
	theme.Colors[core.ColorLose] = "250"
	theme.Colors[core.ColorSelect] = "241"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"pastel":  PastelTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames returns the names accepted by ThemeByName, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ThemeByName looks up a theme. An empty name means the default.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	ctor, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return ctor(), nil
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the theme used by new models.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// CurrentTheme returns the theme new models start with.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
