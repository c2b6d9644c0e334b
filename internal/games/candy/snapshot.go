package candy

import "github.com/vovakirdan/candy-match/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateAnimating     GameStateType = "animating"
	StateLevelComplete GameStateType = "level_complete"
	StateGameOver      GameStateType = "game_over"
	StatePaused        GameStateType = "paused"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int // 1-indexed
	Target    int
	Score     int
	MovesLeft int
	Board     [match3.BoardSize][match3.BoardSize]match3.Color // Board on screen
	Cursor    match3.Position
	Phase     string // Phase of the frame on screen, empty when idle
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Board:  g.display.Colors(),
		Cursor: g.cursor,
		State:  StatePlaying,
	}
	if g.frame != nil {
		snap.Phase = g.frame.Phase.String()
	}
	if g.session == nil {
		return snap
	}

	lvl := g.session.Level()
	snap.Level = lvl.Number
	snap.Target = lvl.TargetScore
	snap.Score = g.session.Score()
	snap.MovesLeft = g.session.MovesLeft()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	case g.animating():
		snap.State = StateAnimating
	case g.session.State() == match3.StateLevelComplete:
		snap.State = StateLevelComplete
	case g.session.State() == match3.StateGameOver:
		snap.State = StateGameOver
	}
	return snap
}
