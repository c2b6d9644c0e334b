package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swappedBoard(t *testing.T) Board {
	t.Helper()
	b, err := Swap(parseBoard(t, oneSwapRows...), Pos(0, 2), Pos(1, 2))
	require.NoError(t, err)
	return b
}

func TestCascadePhaseOrder(t *testing.T) {
	c, err := NewCascade(swappedBoard(t), newRand(11), testPalette)
	require.NoError(t, err)

	var frames []Frame
	for f := range c.All() {
		frames = append(frames, f)
	}
	require.NoError(t, c.Err())
	require.True(t, c.Done())
	require.NotEmpty(t, frames)
	require.Zero(t, len(frames)%4, "each iteration is mark, clear, gravity, refill")

	cycle := []Phase{PhaseMark, PhaseClear, PhaseGravity, PhaseRefill}
	total := 0
	for i, f := range frames {
		assert.Equal(t, cycle[i%4], f.Phase, "frame %d", i)
		assert.Equal(t, i/4+1, f.Iteration)
		assert.Equal(t, f.Iteration, f.Combo)
		total += f.Points
	}

	first := frames[0]
	assert.Equal(t, []Position{Pos(0, 0), Pos(0, 1), Pos(0, 2)}, first.Matched)
	assert.Equal(t, 3*PointsPerTile, first.Points)
	for _, p := range first.Matched {
		assert.True(t, first.Board[p.Row][p.Col].Matched)
	}

	assert.Equal(t, 3, frames[1].Board.CountEmpty())
	assert.Equal(t, Empty, frames[2].Board[0][0].Color)
	assert.Zero(t, frames[3].Board.CountEmpty())
	assert.True(t, frames[3].Board[0][0].New)

	assert.Equal(t, total, c.Points())
	assert.Equal(t, len(frames)/4, c.Iterations())
	assert.False(t, HasMatches(c.Board()))
	assert.Zero(t, c.Board().CountEmpty())

	_, ok := c.Next()
	assert.False(t, ok, "exhausted cascade stays exhausted")
}

func TestCascadeComboScoring(t *testing.T) {
	// Every refill is Red, so a full red board chains forever. Iteration n
	// scores 64 cells at n times the base.
	var colors [BoardSize][BoardSize]Color
	for r := range BoardSize {
		for c := range BoardSize {
			colors[r][c] = Red
		}
	}
	c, err := NewCascade(BoardFromColors(colors), constRand(0), Palette{Red, Blue, Green})
	require.NoError(t, err)

	var frames []Frame
	for f := range c.All() {
		frames = append(frames, f)
	}
	require.NoError(t, c.Err())

	require.Len(t, frames, MaxCascadeIterations*4+1)
	assert.Equal(t, 64*PointsPerTile*1, frames[0].Points)
	assert.Equal(t, 64*PointsPerTile*2, frames[4].Points)

	last := frames[len(frames)-1]
	assert.Equal(t, PhaseReshuffle, last.Phase)
	assert.False(t, HasMatches(last.Board))
	assert.Zero(t, last.Board.CountEmpty())

	assert.Equal(t, MaxCascadeIterations, c.Iterations())
	sum := MaxCascadeIterations * (MaxCascadeIterations + 1) / 2
	assert.Equal(t, 64*PointsPerTile*sum, c.Points())
}

func TestCascadeStableBoard(t *testing.T) {
	b := parseBoard(t, stableRows...)
	out, points, iterations, err := Resolve(b, newRand(1), testPalette)
	require.NoError(t, err)
	assert.Equal(t, b, out)
	assert.Zero(t, points)
	assert.Zero(t, iterations)
}

func TestResolve(t *testing.T) {
	out, points, iterations, err := Resolve(swappedBoard(t), newRand(5), testPalette)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, points, 3*PointsPerTile)
	assert.GreaterOrEqual(t, iterations, 1)
	assert.Empty(t, FindMatches(out))
	assert.Zero(t, out.CountEmpty())
}

func TestNewCascadeRejectsEmptyPalette(t *testing.T) {
	_, err := NewCascade(parseBoard(t, stableRows...), newRand(1), nil)
	require.ErrorIs(t, err, ErrEmptyPalette)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "gravity", PhaseGravity.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

func TestResolveTerminates(t *testing.T) {
	palettes := []Palette{
		{Red, Blue, Green},
		{Red, Blue, Green, Yellow},
	}
	for _, palette := range palettes {
		t.Run(palette.String(), func(t *testing.T) {
			for seed := range int64(200) {
				rng := newRand(seed)
				var colors [BoardSize][BoardSize]Color
				for r := range BoardSize {
					for c := range BoardSize {
						colors[r][c] = palette[rng.Intn(len(palette))]
					}
				}

				out, _, iterations, err := Resolve(BoardFromColors(colors), rng, palette)
				require.NoError(t, err, "seed %d", seed)
				assert.LessOrEqual(t, iterations, MaxCascadeIterations, "seed %d", seed)
				assert.Zero(t, out.CountEmpty(), "seed %d", seed)
				if iterations < MaxCascadeIterations {
					assert.False(t, HasMatches(out), "seed %d", seed)
				}
			}
		})
	}
}
