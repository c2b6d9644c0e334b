package candy

import (
	"sync"

	"github.com/vovakirdan/candy-match/internal/config"
	"github.com/vovakirdan/candy-match/internal/match3"
)

// Settings are the configurable parts of the game.
type Settings struct {
	Levels        []match3.LevelConfig
	Pacing        config.PacingConfig
	ComboAnnounce int // Combo from which a banner is shown, 0 disables it
}

// SettingsFromConfig converts a loaded config into game settings.
func SettingsFromConfig(cfg config.CandyConfig) (Settings, error) {
	levels, err := cfg.ToLevels()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Levels:        levels,
		Pacing:        cfg.Pacing,
		ComboAnnounce: cfg.Combo.AnnounceAt,
	}, nil
}

// DefaultSettings returns the built-in levels and pacing.
func DefaultSettings() Settings {
	return Settings{
		Levels:        match3.DefaultLevels,
		Pacing:        config.DefaultPacing(),
		ComboAnnounce: 3,
	}
}

var (
	settingsMu      sync.RWMutex
	defaultSettings = DefaultSettings()
)

// Configure sets the settings used by games created through the registry.
// Call it once at startup, before any session starts.
func Configure(s Settings) error {
	if err := match3.ValidateLevels(s.Levels); err != nil {
		return err
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	defaultSettings = s
	return nil
}

// CurrentSettings returns the settings new games start with.
func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return defaultSettings
}
