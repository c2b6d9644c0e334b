package match3

import "errors"

var (
	// ErrOutOfBounds means a position outside the board was passed in.
	// The caller generated it, so it is a bug on their side.
	ErrOutOfBounds = errors.New("match3: position out of bounds")

	// ErrEmptyPalette means a random draw was requested from no colors.
	ErrEmptyPalette = errors.New("match3: empty palette")

	// ErrPaletteTooSmall means the palette can't build a run-free board.
	ErrPaletteTooSmall = errors.New("match3: palette too small")

	// ErrInvalidColor means a palette holds Empty, an unknown or a repeated color.
	ErrInvalidColor = errors.New("match3: invalid palette color")

	// ErrBusy means a swap or cascade is still in flight.
	ErrBusy = errors.New("match3: session busy")

	// ErrNotAdjacent means the swap positions are not neighbors.
	ErrNotAdjacent = errors.New("match3: positions not adjacent")

	// ErrInvalidState means the action isn't allowed in the current state.
	ErrInvalidState = errors.New("match3: action not allowed in current state")

	// ErrNoLevels means a session was created without a level table.
	ErrNoLevels = errors.New("match3: no levels")

	// ErrUnknownLevel means a level index outside the table was requested.
	ErrUnknownLevel = errors.New("match3: unknown level")

	// ErrInvalidLevel means a level entry has an unusable target, budget or palette.
	ErrInvalidLevel = errors.New("match3: invalid level")
)
