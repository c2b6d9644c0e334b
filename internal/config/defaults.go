package config

import (
	_ "embed"
	"strings"

	"github.com/vovakirdan/candy-match/internal/match3"
)

//go:embed defaults/candy.yaml
var defaultCandyYAML []byte

// DefaultCandyConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used if that fails to parse.
func DefaultCandyConfig() CandyConfig {
	levels := make([]LevelSpec, 0, len(match3.DefaultLevels))
	for _, l := range match3.DefaultLevels {
		levels = append(levels, LevelSpec{
			Number:      l.Number,
			Name:        l.Name,
			TargetScore: l.TargetScore,
			Moves:       l.Moves,
			Colors:      colorNames(l.Colors),
		})
	}
	return CandyConfig{
		Levels: levels,
		Pacing: DefaultPacing(),
		Combo:  ComboSettings{AnnounceAt: 3},
	}
}

// DefaultPacing returns the default phase durations.
func DefaultPacing() PacingConfig {
	return PacingConfig{
		Swap:    12,
		Revert:  12,
		Mark:    18,
		Clear:   8,
		Gravity: 10,
		Refill:  12,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCandyYAML
}

func colorNames(p match3.Palette) []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = strings.ToLower(c.String())
	}
	return names
}
