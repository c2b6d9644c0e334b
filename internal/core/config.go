package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is how the current level ended, if it did.
type Outcome int

const (
	OutcomeNone Outcome = iota // Still playing
	OutcomeWon                 // Target reached
	OutcomeLost                // Out of moves
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Score on the current level
	Level     int     // 1-based level number
	Target    int     // Score needed to clear the level
	MovesLeft int     // Remaining move budget
	MovesUsed int     // Moves spent on the current level
	MaxCombo  int     // Best combo on the current level
	Outcome   Outcome // Set once the level has ended
	Paused    bool    // Whether the game is paused
}

// Ended reports whether the level is over.
func (s GameState) Ended() bool {
	return s.Outcome != OutcomeNone
}

// EventKind identifies something worth telling the platform about.
type EventKind int

const (
	EventLevelStart EventKind = iota
	EventLevelComplete
	EventGameOver
	EventCombo
	EventCampaignLoop
)

var eventNames = [...]string{
	EventLevelStart:    "level_start",
	EventLevelComplete: "level_complete",
	EventGameOver:      "game_over",
	EventCombo:         "combo",
	EventCampaignLoop:  "campaign_loop",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is emitted by a game step for logging and score keeping.
type Event struct {
	Kind  EventKind
	State GameState // State at the time of the event
	Combo int       // For EventCombo
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
