package match3

import "iter"

const (
	// PointsPerTile is the base score for each matched cell.
	PointsPerTile = 10

	// MaxCascadeIterations bounds the resolve loop. Refills are random and
	// could keep forming runs; past this many iterations the board is
	// reshuffled instead.
	MaxCascadeIterations = 50
)

// Phase identifies which transformation produced a Frame.
type Phase int

const (
	PhaseSwap      Phase = iota // Two cells exchanged
	PhaseRevert                 // Swap undone because it made no match
	PhaseMark                   // Matched cells flagged, points awarded
	PhaseClear                  // Matched cells emptied
	PhaseGravity                // Columns compacted
	PhaseRefill                 // Empty cells filled with new tiles
	PhaseReshuffle              // Board replaced after hitting the iteration cap
)

var phaseNames = [...]string{
	PhaseSwap:      "swap",
	PhaseRevert:    "revert",
	PhaseMark:      "mark",
	PhaseClear:     "clear",
	PhaseGravity:   "gravity",
	PhaseRefill:    "refill",
	PhaseReshuffle: "reshuffle",
}

// String returns the lowercase phase name.
func (p Phase) String() string {
	if int(p) >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Frame is a board snapshot emitted after one discrete step, for the
// presentation layer to render at its own pace.
type Frame struct {
	Phase     Phase
	Board     Board
	Iteration int        // Cascade iteration, 1-based; 0 for swap/revert
	Matched   []Position // Cells matched this iteration (mark frames)
	Points    int        // Points awarded by this frame
	Combo     int        // Multiplier of the current iteration

	// Filled in when the frame comes from a Session turn.
	Score     int
	MovesLeft int
	State     GameState
}

// Cascade is the resolve loop as a lazy, finite sequence of frames:
// detect, mark, clear, gravity, refill, repeat until no matches remain.
// It can't be restarted; once exhausted Next keeps returning false.
type Cascade struct {
	board     Board
	rng       Rand
	palette   Palette
	next      Phase
	iteration int
	points    int
	done      bool
	err       error
}

// NewCascade prepares a resolve loop over b. Nothing happens until the
// first call to Next.
func NewCascade(b Board, rng Rand, palette Palette) (*Cascade, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	return &Cascade{
		board:   b,
		rng:     rng,
		palette: palette,
		next:    PhaseMark,
	}, nil
}

// Next performs one step and returns the resulting frame. It returns false
// once an iteration finds no matches (or after a reshuffle).
func (c *Cascade) Next() (Frame, bool) {
	if c.done {
		return Frame{}, false
	}

	switch c.next {
	case PhaseMark:
		return c.mark()

	case PhaseClear:
		c.board = ClearMatched(c.board)
		c.next = PhaseGravity
		return c.frame(PhaseClear), true

	case PhaseGravity:
		c.board = ApplyGravity(c.board)
		c.next = PhaseRefill
		return c.frame(PhaseGravity), true

	case PhaseRefill:
		board, err := RefillBoard(c.board, c.rng, c.palette)
		if err != nil {
			c.fail(err)
			return Frame{}, false
		}
		c.board = board
		c.next = PhaseMark
		return c.frame(PhaseRefill), true
	}

	c.done = true
	return Frame{}, false
}

func (c *Cascade) mark() (Frame, bool) {
	matches := FindMatches(c.board)
	if len(matches) == 0 {
		c.done = true
		return Frame{}, false
	}

	if c.iteration >= MaxCascadeIterations {
		board, err := CreateBoard(c.rng, c.palette)
		if err != nil {
			c.fail(err)
			return Frame{}, false
		}
		c.board = board
		c.done = true
		return c.frame(PhaseReshuffle), true
	}

	c.iteration++

	board := ClearNewFlags(c.board)
	for _, p := range matches {
		board[p.Row][p.Col].Matched = true
	}
	c.board = board

	f := c.frame(PhaseMark)
	f.Matched = matches
	f.Points = len(matches) * PointsPerTile * c.combo()
	c.points += f.Points
	c.next = PhaseClear
	return f, true
}

func (c *Cascade) frame(phase Phase) Frame {
	return Frame{
		Phase:     phase,
		Board:     c.board,
		Iteration: c.iteration,
		Combo:     c.combo(),
	}
}

// combo is the multiplier of the current iteration: 1 for the first,
// one more for each chain reaction after it.
func (c *Cascade) combo() int {
	if c.iteration == 0 {
		return 1
	}
	return c.iteration
}

func (c *Cascade) fail(err error) {
	c.err = err
	c.done = true
}

// All returns the remaining frames as an iterator.
func (c *Cascade) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, ok := c.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Board returns the board as of the last frame.
func (c *Cascade) Board() Board { return c.board }

// Points returns the total points awarded so far.
func (c *Cascade) Points() int { return c.points }

// Iterations returns how many match iterations have run.
func (c *Cascade) Iterations() int { return c.iteration }

// Done reports whether the sequence is exhausted.
func (c *Cascade) Done() bool { return c.done }

// Err returns the error that stopped the cascade early, if any.
func (c *Cascade) Err() error { return c.err }

// Resolve runs a cascade over b to completion and returns the stable
// board, the points earned and the number of iterations.
func Resolve(b Board, rng Rand, palette Palette) (Board, int, int, error) {
	c, err := NewCascade(b, rng, palette)
	if err != nil {
		return b, 0, 0, err
	}
	for range c.All() {
	}
	return c.Board(), c.Points(), c.Iterations(), c.Err()
}
