// Package config provides YAML-based configuration loading for the level
// table, animation pacing and difficulty presets.
package config

// CandyConfig contains all configuration for the candy match game.
type CandyConfig struct {
	Levels []LevelSpec   `yaml:"levels"`
	Pacing PacingConfig  `yaml:"pacing"`
	Combo  ComboSettings `yaml:"combo"`
}

// LevelSpec defines one level of the campaign.
type LevelSpec struct {
	Number      int      `yaml:"number"`
	Name        string   `yaml:"name"`
	TargetScore int      `yaml:"target_score"`
	Moves       int      `yaml:"moves"`
	Colors      []string `yaml:"colors"` // Color names, e.g. "red", "blue"
}

// PacingConfig sets how many ticks each cascade phase stays on screen.
// At 60 ticks per second, 18 ticks is about 300ms.
type PacingConfig struct {
	Swap    int `yaml:"swap"`
	Revert  int `yaml:"revert"`
	Mark    int `yaml:"mark"`
	Clear   int `yaml:"clear"`
	Gravity int `yaml:"gravity"`
	Refill  int `yaml:"refill"`
}

// ComboSettings controls the combo banner.
type ComboSettings struct {
	AnnounceAt int `yaml:"announce_at"` // Show a banner (and log) from this combo on
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
