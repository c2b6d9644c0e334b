package config

import "math"

// movesFactor is the move budget multiplier of each preset.
var movesFactor = map[DifficultyPreset]float64{
	DifficultyEasy:   1.25,
	DifficultyNormal: 1.0,
	DifficultyHard:   0.8,
}

// ScaleMoves returns the move budget for a preset, rounded to nearest and
// never below one move.
func ScaleMoves(moves int, preset DifficultyPreset) int {
	factor, ok := movesFactor[preset]
	if !ok {
		factor = 1.0
	}
	scaled := int(math.Round(float64(moves) * factor))
	return max(scaled, 1)
}

// ApplyCandyPreset rewrites the level budgets for a difficulty preset.
func ApplyCandyPreset(cfg *CandyConfig, preset DifficultyPreset) {
	for i := range cfg.Levels {
		cfg.Levels[i].Moves = ScaleMoves(cfg.Levels[i].Moves, preset)
	}
}
