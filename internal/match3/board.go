package match3

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BoardSize is the board dimension. The board is always BoardSize x BoardSize.
const BoardSize = 8

// Rand is the random source used for tile generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Cell is a single board tile.
type Cell struct {
	ID      string // Identity token, stable across moves; only used for animation tracking
	Color   Color
	Matched bool // Part of a match in the current step (visual only)
	New     bool // Spawned by a refill (visual only)
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.Color.IsEmpty()
}

func newCell(color Color) Cell {
	return Cell{ID: uuid.NewString(), Color: color}
}

func emptyCell() Cell {
	return newCell(Empty)
}

// Position is a 0-indexed (row, column) board coordinate.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func checkBounds(ps ...Position) error {
	for _, p := range ps {
		if !p.InBounds() {
			return fmt.Errorf("%v: %w", p, ErrOutOfBounds)
		}
	}
	return nil
}

// Board is the grid of cells, indexed [row][col]. Being an array it copies
// by value, so every transformation below returns a new board and leaves
// its input untouched.
type Board [BoardSize][BoardSize]Cell

// At returns the cell at p.
func (b Board) At(p Position) (Cell, error) {
	if err := checkBounds(p); err != nil {
		return Cell{}, err
	}
	return b[p.Row][p.Col], nil
}

// Colors returns the color grid without identity or visual flags.
func (b Board) Colors() [BoardSize][BoardSize]Color {
	var out [BoardSize][BoardSize]Color
	for r := range BoardSize {
		for c := range BoardSize {
			out[r][c] = b[r][c].Color
		}
	}
	return out
}

// CountEmpty returns the number of empty cells.
func (b Board) CountEmpty() int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// String renders the board as rows of color initials, "." for empty.
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range BoardSize {
			col := b[r][c].Color
			if col.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(col.String()[0])
		}
	}
	return sb.String()
}

// BoardFromColors builds a board from a color grid, giving each cell a
// fresh identity. Handy for fixtures and replays.
func BoardFromColors(colors [BoardSize][BoardSize]Color) Board {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			b[r][c] = newCell(colors[r][c])
		}
	}
	return b
}

// CreateBoard builds a board with every cell drawn uniformly from palette,
// never placing a color that would complete a run of three with the two
// cells to its left or the two cells above it. The result has no matches.
//
// Drawing from the palette minus the forbidden colors has the same
// distribution as redrawing until the color fits, but always terminates.
func CreateBoard(rng Rand, palette Palette) (Board, error) {
	if err := palette.Validate(); err != nil {
		return Board{}, err
	}
	if len(palette) < MinPaletteSize {
		return Board{}, fmt.Errorf("need %d colors, got %d: %w", MinPaletteSize, len(palette), ErrPaletteTooSmall)
	}

	var b Board
	candidates := make([]Color, 0, len(palette))
	for r := range BoardSize {
		for c := range BoardSize {
			candidates = candidates[:0]
			for _, col := range palette {
				if c >= 2 && b[r][c-1].Color == col && b[r][c-2].Color == col {
					continue
				}
				if r >= 2 && b[r-1][c].Color == col && b[r-2][c].Color == col {
					continue
				}
				candidates = append(candidates, col)
			}
			b[r][c] = newCell(candidates[rng.Intn(len(candidates))])
		}
	}
	return b, nil
}
