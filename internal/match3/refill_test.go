package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefillBoard(t *testing.T) {
	b := ApplyGravity(parseBoard(t,
		"R.GYRBGY",
		"G.RBGYRB",
		"R.G.RBGY",
		"GYRBGYRB",
		"RBGYRBGY",
		"GYRBGYRB",
		"RBGYRBGY",
		"GYRBGYRB",
	))
	out, err := RefillBoard(b, newRand(3), Palette{Purple, Orange})
	require.NoError(t, err)

	assert.Zero(t, out.CountEmpty())
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].IsEmpty() {
				assert.True(t, out[r][c].New)
				assert.Contains(t, []Color{Purple, Orange}, out[r][c].Color)
				assert.NotEqual(t, b[r][c].ID, out[r][c].ID)
				continue
			}
			assert.Equal(t, b[r][c], out[r][c])
		}
	}

	cleared := ClearNewFlags(out)
	for r := range BoardSize {
		for c := range BoardSize {
			assert.False(t, cleared[r][c].New)
		}
	}
}

func TestRefillBoardEmptyPalette(t *testing.T) {
	b := parseBoard(t, stableRows...)
	_, err := RefillBoard(b, newRand(1), nil)
	require.ErrorIs(t, err, ErrEmptyPalette)
}
