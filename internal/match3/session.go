package match3

import (
	"fmt"
	"slices"
)

// GameState is the session's lifecycle state.
type GameState int

const (
	StateIdle          GameState = iota // Waiting for input
	StateSwapping                       // Swap applied, not yet judged
	StateProcessing                     // Cascade running
	StateLevelComplete                  // Target reached
	StateGameOver                       // Out of moves below target
)

var stateNames = [...]string{
	StateIdle:          "idle",
	StateSwapping:      "swapping",
	StateProcessing:    "processing",
	StateLevelComplete: "level_complete",
	StateGameOver:      "game_over",
}

func (s GameState) String() string {
	if int(s) >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Busy reports whether a turn is in flight.
func (s GameState) Busy() bool {
	return s == StateSwapping || s == StateProcessing
}

// Terminal reports whether the level has ended.
func (s GameState) Terminal() bool {
	return s == StateLevelComplete || s == StateGameOver
}

// Option configures a Session.
type Option func(*Session)

// WithStartLevel starts the session at the given zero-based level index.
func WithStartLevel(index int) Option {
	return func(s *Session) {
		s.levelIndex = index
	}
}

type subscriber struct {
	id int
	fn func(Frame)
}

// Session is one player's campaign: the board, score, move budget and
// lifecycle state of the current level.
//
// A Session is not safe for concurrent use. At most one Turn is in flight
// at a time; input is rejected with ErrBusy until it has been drained.
type Session struct {
	levels     []LevelConfig
	rng        Rand
	levelIndex int

	board     Board
	score     int
	movesLeft int
	state     GameState
	maxCombo  int

	selected     Position
	hasSelection bool

	turn *Turn

	subs   []subscriber
	nextID int
}

// NewSession validates the level table and deals the starting level.
func NewSession(levels []LevelConfig, rng Rand, opts ...Option) (*Session, error) {
	if err := ValidateLevels(levels); err != nil {
		return nil, err
	}
	s := &Session{
		levels: slices.Clone(levels),
		rng:    rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.initLevel(s.levelIndex); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) initLevel(index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("level index %d of %d: %w", index, len(s.levels), ErrUnknownLevel)
	}
	lvl := s.levels[index]
	board, err := CreateBoard(s.rng, lvl.Colors)
	if err != nil {
		return fmt.Errorf("level %d: %w", lvl.Number, err)
	}
	s.levelIndex = index
	s.board = board
	s.score = 0
	s.movesLeft = lvl.Moves
	s.state = StateIdle
	s.maxCombo = 0
	s.hasSelection = false
	s.turn = nil
	return nil
}

// ready returns an error if the session can't take board input.
func (s *Session) ready() error {
	switch {
	case s.state.Busy():
		return ErrBusy
	case s.state.Terminal():
		return fmt.Errorf("%s: %w", s.state, ErrInvalidState)
	}
	return nil
}

// Click handles a cell selection. The first click selects, clicking the
// same cell deselects, clicking a neighbor attempts a swap and clicking
// anywhere else moves the selection. The returned Turn is nil unless a
// swap was started.
func (s *Session) Click(p Position) (*Turn, error) {
	if err := checkBounds(p); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	switch {
	case !s.hasSelection:
		s.selected, s.hasSelection = p, true
	case s.selected == p:
		s.hasSelection = false
	case AreAdjacent(s.selected, p):
		return s.AttemptSwap(s.selected, p)
	default:
		s.selected = p
	}
	return nil, nil
}

// AttemptSwap starts a turn swapping p1 and p2. The selection is cleared
// whatever the outcome. The turn does nothing until its frames are pulled.
func (s *Session) AttemptSwap(p1, p2 Position) (*Turn, error) {
	if err := checkBounds(p1, p2); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if !AreAdjacent(p1, p2) {
		return nil, fmt.Errorf("%s and %s: %w", p1, p2, ErrNotAdjacent)
	}

	s.hasSelection = false
	s.state = StateSwapping
	s.turn = &Turn{s: s, p1: p1, p2: p2}
	return s.turn, nil
}

// Advance moves on to the next level after a win. After the last level
// the campaign wraps to the first, and looped reports that it did.
func (s *Session) Advance() (looped bool, err error) {
	if s.state != StateLevelComplete {
		return false, fmt.Errorf("advance in %s: %w", s.state, ErrInvalidState)
	}
	next := s.levelIndex + 1
	if next >= len(s.levels) {
		next, looped = 0, true
	}
	return looped, s.initLevel(next)
}

// Retry restarts the current level after a loss.
func (s *Session) Retry() error {
	if s.state != StateGameOver {
		return fmt.Errorf("retry in %s: %w", s.state, ErrInvalidState)
	}
	return s.initLevel(s.levelIndex)
}

// StartLevel jumps to the given level, discarding progress on the current one.
func (s *Session) StartLevel(index int) error {
	if s.state.Busy() {
		return ErrBusy
	}
	return s.initLevel(index)
}

// Subscribe registers fn to be called with every frame a turn produces.
// The returned function removes it.
func (s *Session) Subscribe(fn func(Frame)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *Session) publish(f Frame) {
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(f)
	}
}

// checkEnd runs once a turn is back to idle. The score is checked before
// the move count, so a winning last move wins.
func (s *Session) checkEnd() {
	if s.state != StateIdle {
		return
	}
	switch {
	case s.score >= s.levels[s.levelIndex].TargetScore:
		s.state = StateLevelComplete
	case s.movesLeft <= 0:
		s.state = StateGameOver
	}
}

// Board returns the current board by value.
func (s *Session) Board() Board { return s.board }

// Score returns the points earned on the current level.
func (s *Session) Score() int { return s.score }

// MovesLeft returns the swaps remaining on the current level.
func (s *Session) MovesLeft() int { return s.movesLeft }

// State returns the state machine's current state.
func (s *Session) State() GameState { return s.state }

// MaxCombo returns the longest cascade chain reached on the current level.
func (s *Session) MaxCombo() int { return s.maxCombo }

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int { return s.levelIndex }

// LevelCount returns the number of levels in the table.
func (s *Session) LevelCount() int { return len(s.levels) }

// Level returns the configuration of the current level.
func (s *Session) Level() LevelConfig { return s.levels[s.levelIndex] }

// Levels returns a copy of the level table.
func (s *Session) Levels() []LevelConfig { return slices.Clone(s.levels) }

// Selected returns the selected cell, if any.
func (s *Session) Selected() (Position, bool) { return s.selected, s.hasSelection }

// Turn returns the turn in flight, or nil.
func (s *Session) Turn() *Turn { return s.turn }

// MovesUsed returns how many moves the current level has consumed.
func (s *Session) MovesUsed() int { return s.Level().Moves - s.movesLeft }
