package match3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var letterColors = map[byte]Color{
	'R': Red,
	'B': Blue,
	'G': Green,
	'Y': Yellow,
	'P': Purple,
	'O': Orange,
	'.': Empty,
}

// parseBoard builds a board from eight rows of color initials.
func parseBoard(t testing.TB, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, BoardSize)
	var colors [BoardSize][BoardSize]Color
	for r, row := range rows {
		require.Len(t, row, BoardSize, "row %d", r)
		for c := range BoardSize {
			col, ok := letterColors[row[c]]
			require.True(t, ok, "unknown color %q at %d,%d", row[c], r, c)
			colors[r][c] = col
		}
	}
	return BoardFromColors(colors)
}

// stableRows is a run-free board: rows alternate between two shifts of
// a four color cycle.
var stableRows = []string{
	"RBGYRBGY",
	"GYRBGYRB",
	"RBGYRBGY",
	"GYRBGYRB",
	"RBGYRBGY",
	"GYRBGYRB",
	"RBGYRBGY",
	"GYRBGYRB",
}

// oneSwapRows is stableRows with (0,2)<->(1,2) completing R-R-R on row 0
// and (0,6)<->(0,7) making nothing.
var oneSwapRows = []string{
	"RRBYRBGY",
	"GYRBGYRB",
	"RBGYRBGY",
	"GYRBGYRB",
	"RBGYRBGY",
	"GYRBGYRB",
	"RBGYRBGY",
	"GYRBGYRB",
}

var testPalette = Palette{Red, Blue, Green, Yellow}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// constRand always returns the same index.
type constRand int

func (r constRand) Intn(n int) int { return int(r) % n }

// randomBoard fills every cell with a random color or Empty, runs
// included.
func randomBoard(seed int64) Board {
	rng := newRand(seed)
	var colors [BoardSize][BoardSize]Color
	for r := range BoardSize {
		for c := range BoardSize {
			colors[r][c] = Color(rng.Intn(len(AllColors) + 1))
		}
	}
	return BoardFromColors(colors)
}
