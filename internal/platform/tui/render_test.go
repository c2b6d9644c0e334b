package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/candy-match/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(1, 1, "candy")

	if got, want := RenderScreen(s, DefaultTheme()), s.String(); got != want {
		t.Errorf("plain screen rendered as %q, want %q", got, want)
	}
}

func TestRenderScreenStyled(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawStyledText(0, 0, "SCORE", core.Style{FG: core.ColorAccent, Bold: true})
	s.DrawStyledText(6, 0, "120", core.Fg(core.ColorText))

	out := RenderScreen(s, DefaultTheme())
	for _, text := range []string{"SCORE", "120"} {
		if !strings.Contains(out, text) {
			t.Errorf("output %q is missing %q", out, text)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("got %d line breaks, want 1", n)
	}
}

func TestThemeByName(t *testing.T) {
	theme, err := ThemeByName("")
	if err != nil || theme.Name != "default" {
		t.Errorf("empty name = %q, %v; want default", theme.Name, err)
	}

	theme, err = ThemeByName("NEON")
	if err != nil || theme.Name != "neon" {
		t.Errorf("NEON = %q, %v; want neon", theme.Name, err)
	}

	if _, err := ThemeByName("sepia"); err == nil {
		t.Error("unknown theme should fail")
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, name := range names {
		theme, err := ThemeByName(name)
		if err != nil {
			t.Errorf("ThemeByName(%q): %v", name, err)
		}
		for c := core.ColorRed; c <= core.ColorOrange; c++ {
			if theme.Colors[c] == "" {
				t.Errorf("theme %q has no color for %v", name, c)
			}
		}
	}
}
