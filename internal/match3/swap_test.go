package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreAdjacent(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Position
		want   bool
	}{
		{"right", Pos(3, 3), Pos(3, 4), true},
		{"up", Pos(3, 3), Pos(2, 3), true},
		{"same", Pos(3, 3), Pos(3, 3), false},
		{"diagonal", Pos(3, 3), Pos(4, 4), false},
		{"two apart", Pos(3, 3), Pos(3, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreAdjacent(tt.p1, tt.p2))
			assert.Equal(t, tt.want, AreAdjacent(tt.p2, tt.p1))
		})
	}
}

func TestSwap(t *testing.T) {
	b := parseBoard(t, oneSwapRows...)
	swapped, err := Swap(b, Pos(0, 2), Pos(1, 2))
	require.NoError(t, err)

	assert.Equal(t, b[0][2], swapped[1][2])
	assert.Equal(t, b[1][2], swapped[0][2])
	assert.Equal(t, Blue, b[0][2].Color, "input untouched")

	back, err := Swap(swapped, Pos(0, 2), Pos(1, 2))
	require.NoError(t, err)
	assert.Equal(t, b, back)

	_, err = Swap(b, Pos(0, 7), Pos(0, 8))
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestIsValidSwap(t *testing.T) {
	b := parseBoard(t, oneSwapRows...)
	before := b

	ok, err := IsValidSwap(b, Pos(0, 2), Pos(1, 2))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsValidSwap(b, Pos(0, 6), Pos(0, 7))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, before, b)

	_, err = IsValidSwap(b, Pos(-1, 0), Pos(0, 0))
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestIsValidSwapSymmetric(t *testing.T) {
	for seed := range int64(50) {
		created, err := CreateBoard(newRand(seed), testPalette)
		require.NoError(t, err)
		for _, b := range []Board{created, randomBoard(seed)} {
			assertSwapSymmetric(t, b)
		}
	}
}

func assertSwapSymmetric(t *testing.T, b Board) {
	t.Helper()
	for r := range BoardSize {
		for c := range BoardSize {
			p := Pos(r, c)
			for _, q := range []Position{Pos(r, c+1), Pos(r+1, c)} {
				if !q.InBounds() {
					continue
				}
				forward, err := IsValidSwap(b, p, q)
				require.NoError(t, err)
				backward, err := IsValidSwap(b, q, p)
				require.NoError(t, err)
				assert.Equal(t, forward, backward, "%s and %s", p, q)
			}
		}
	}
}
