package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/candy-match/internal/match3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "candy.yaml"

// LoadCandy loads the game configuration.
// Search order: customPath -> ~/.candymatch/configs/candy.yaml -> ./configs/candy.yaml -> embedded default
// Sections left out of a file fall back to the defaults.
func LoadCandy(customPath string) (CandyConfig, error) {
	cfg := DefaultCandyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		parsed, err := parseCandy(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return parsed, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, err := parseCandy(data); err == nil {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if parsed, err := parseCandy(data); err == nil {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, err := parseCandy(defaultCandyYAML); err == nil {
		return parsed, nil
	}
	return cfg, nil // Fallback to hardcoded if embed fails
}

// parseCandy decodes data over the defaults and validates the result.
func parseCandy(data []byte) (CandyConfig, error) {
	cfg := DefaultCandyConfig()
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultCandyConfig().Levels
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".candymatch", "configs", filename)
}

// Validate checks the level table and pacing.
func (c CandyConfig) Validate() error {
	if _, err := c.ToLevels(); err != nil {
		return err
	}
	p := c.Pacing
	for _, ticks := range []int{p.Swap, p.Revert, p.Mark, p.Clear, p.Gravity, p.Refill} {
		if ticks < 0 {
			return fmt.Errorf("pacing: negative tick count %d", ticks)
		}
	}
	return nil
}

// ToLevels converts the level entries into the simulation's level table.
func (c CandyConfig) ToLevels() ([]match3.LevelConfig, error) {
	levels := make([]match3.LevelConfig, 0, len(c.Levels))
	var errs []error
	for i, entry := range c.Levels {
		number := entry.Number
		if number == 0 {
			number = i + 1
		}
		palette := make(match3.Palette, 0, len(entry.Colors))
		for _, name := range entry.Colors {
			color, ok := match3.ParseColor(name)
			if !ok {
				errs = append(errs, fmt.Errorf("level %d: unknown color %q: %w", number, name, match3.ErrInvalidColor))
				continue
			}
			palette = append(palette, color)
		}
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", number)
		}
		levels = append(levels, match3.LevelConfig{
			Number:      number,
			Name:        name,
			TargetScore: entry.TargetScore,
			Moves:       entry.Moves,
			Colors:      palette,
		})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := match3.ValidateLevels(levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// Ticks returns how long a phase stays on screen.
func (p PacingConfig) Ticks(phase match3.Phase) int {
	switch phase {
	case match3.PhaseSwap:
		return p.Swap
	case match3.PhaseRevert:
		return p.Revert
	case match3.PhaseMark:
		return p.Mark
	case match3.PhaseClear:
		return p.Clear
	case match3.PhaseGravity:
		return p.Gravity
	case match3.PhaseRefill, match3.PhaseReshuffle:
		return p.Refill
	default:
		return 0
	}
}
