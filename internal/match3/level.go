package match3

import (
	"errors"
	"fmt"
)

// LevelConfig is one entry of the level table. Difficulty grows by widening
// the palette, never the board.
type LevelConfig struct {
	Number      int
	Name        string
	TargetScore int
	Moves       int
	Colors      Palette
}

// Validate checks the level can be played. A bad palette here is a
// configuration error and must stop level loading.
func (l LevelConfig) Validate() error {
	if l.TargetScore <= 0 {
		return fmt.Errorf("level %d: target score %d: %w", l.Number, l.TargetScore, ErrInvalidLevel)
	}
	if l.Moves <= 0 {
		return fmt.Errorf("level %d: moves %d: %w", l.Number, l.Moves, ErrInvalidLevel)
	}
	if err := l.Colors.Validate(); err != nil {
		return fmt.Errorf("level %d: %w", l.Number, err)
	}
	if len(l.Colors) < MinPaletteSize {
		return fmt.Errorf("level %d: %d colors, need %d: %w", l.Number, len(l.Colors), MinPaletteSize, ErrPaletteTooSmall)
	}
	return nil
}

// ValidateLevels checks a whole level table.
func ValidateLevels(levels []LevelConfig) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	var errs []error
	for _, l := range levels {
		if err := l.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultLevels is the built-in campaign.
var DefaultLevels = []LevelConfig{
	{Number: 1, Name: "Sugar Rush", TargetScore: 1000, Moves: 15, Colors: Palette{Red, Blue, Green, Yellow}},
	{Number: 2, Name: "Berry Lane", TargetScore: 2500, Moves: 20, Colors: Palette{Red, Blue, Green, Yellow, Purple}},
	{Number: 3, Name: "Citrus Grove", TargetScore: 4000, Moves: 20, Colors: Palette{Red, Blue, Green, Yellow, Purple, Orange}},
	{Number: 4, Name: "Fruit Storm", TargetScore: 6000, Moves: 18, Colors: Palette{Red, Blue, Green, Yellow, Purple, Orange}},
}
