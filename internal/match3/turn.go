package match3

import "iter"

type turnStage int

const (
	stageSwap turnStage = iota
	stageJudge
	stageCascade
	stageDone
)

// Turn is one swap attempt and everything it sets off, produced lazily
// as frames. The session changes state as frames are pulled, so a turn
// has to be drained (or finished) before the session takes input again.
type Turn struct {
	s       *Session
	p1, p2  Position
	stage   turnStage
	cascade *Cascade
	valid   bool
	err     error
}

// Next advances the turn by one step. It returns false once the turn has
// settled; by then the session is idle or in an end state.
func (t *Turn) Next() (Frame, bool) {
	s := t.s
	switch t.stage {
	case stageSwap:
		board, err := Swap(s.board, t.p1, t.p2)
		if err != nil {
			t.abort(err)
			return Frame{}, false
		}
		s.board = board
		t.stage = stageJudge
		return t.emit(Frame{Phase: PhaseSwap, Board: s.board}), true

	case stageJudge:
		if !HasMatches(s.board) {
			board, err := Swap(s.board, t.p1, t.p2)
			if err != nil {
				t.abort(err)
				return Frame{}, false
			}
			s.board = board
			s.state = StateIdle
			t.stage = stageDone
			s.turn = nil
			return t.emit(Frame{Phase: PhaseRevert, Board: s.board}), true
		}

		cascade, err := NewCascade(s.board, s.rng, s.Level().Colors)
		if err != nil {
			if board, swapErr := Swap(s.board, t.p1, t.p2); swapErr == nil {
				s.board = board
			}
			t.abort(err)
			return Frame{}, false
		}
		t.valid = true
		t.cascade = cascade
		s.movesLeft--
		s.state = StateProcessing
		t.stage = stageCascade
		return t.Next()

	case stageCascade:
		f, ok := t.cascade.Next()
		if !ok {
			t.err = t.cascade.Err()
			t.settle()
			return Frame{}, false
		}
		s.board = f.Board
		if f.Phase == PhaseMark {
			s.score += f.Points
			s.maxCombo = max(s.maxCombo, f.Combo)
		}
		return t.emit(f), true
	}
	return Frame{}, false
}

func (t *Turn) emit(f Frame) Frame {
	f.Score = t.s.score
	f.MovesLeft = t.s.movesLeft
	f.State = t.s.state
	t.s.publish(f)
	return f
}

// settle returns the session to idle and runs the end-of-level check.
func (t *Turn) settle() {
	t.stage = stageDone
	t.s.state = StateIdle
	t.s.turn = nil
	t.s.checkEnd()
}

func (t *Turn) abort(err error) {
	t.err = err
	t.settle()
}

// All returns the remaining frames as an iterator.
func (t *Turn) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, ok := t.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Finish drains the turn without looking at its frames. Subscribers are
// still notified.
func (t *Turn) Finish() error {
	for range t.All() {
	}
	return t.err
}

// Positions returns the two swapped cells.
func (t *Turn) Positions() (Position, Position) { return t.p1, t.p2 }

// Valid reports whether the swap produced a match. It is only meaningful
// once the swap has been judged.
func (t *Turn) Valid() bool { return t.valid }

// Done reports whether the turn has settled.
func (t *Turn) Done() bool { return t.stage == stageDone }

// Err returns the error that cut the turn short, if any.
func (t *Turn) Err() error { return t.err }
