package candy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/candy-match/internal/config"
	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/match3"
)

var testPalette = match3.Palette{match3.Red, match3.Blue, match3.Green, match3.Yellow}

// instantSettings resolves turns within a single step.
func instantSettings(levels ...match3.LevelConfig) Settings {
	return Settings{Levels: levels, Pacing: config.PacingConfig{}, ComboAnnounce: 3}
}

func level(number, target, moves int) match3.LevelConfig {
	return match3.LevelConfig{Number: number, Name: "L", TargetScore: target, Moves: moves, Colors: testPalette}
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, s Settings, seed int64) *Game {
	t.Helper()
	g := New(WithSettings(s))
	g.Reset(runtimeConfig(seed))
	require.NoError(t, g.Err())
	return g
}

// findSwap returns the first adjacent pair whose swap validity is valid.
func findSwap(b match3.Board, valid bool) (match3.Position, match3.Position, bool) {
	for r := range match3.BoardSize {
		for c := range match3.BoardSize {
			p := match3.Pos(r, c)
			for _, q := range []match3.Position{match3.Pos(r, c+1), match3.Pos(r+1, c)} {
				if !q.InBounds() {
					continue
				}
				ok, err := match3.IsValidSwap(b, p, q)
				if err == nil && ok == valid {
					return p, q, true
				}
			}
		}
	}
	return match3.Position{}, match3.Position{}, false
}

// gameWithSwap deals boards until one has a swap of the wanted kind.
func gameWithSwap(t *testing.T, s Settings, valid bool) (*Game, match3.Position, match3.Position) {
	t.Helper()
	for seed := int64(1); seed < 200; seed++ {
		g := newTestGame(t, s, seed)
		if p, q, ok := findSwap(g.session.Board(), valid); ok {
			return g, p, q
		}
	}
	t.Fatal("no board with the wanted swap")
	return nil, match3.Position{}, match3.Position{}
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// swap selects p then q with the cursor and returns the second step's result.
func swap(g *Game, p, q match3.Position) core.StepResult {
	g.cursor = p
	press(g, core.ActionSelect)
	g.cursor = q
	return press(g, core.ActionSelect)
}

// settle steps until the turn on screen has finished.
func settle(t *testing.T, g *Game) []core.Event {
	t.Helper()
	var events []core.Event
	for range 100000 {
		if !g.animating() {
			return events
		}
		events = append(events, press(g).Events...)
	}
	t.Fatal("turn never settled")
	return nil
}

func eventKinds(events []core.Event) []core.EventKind {
	kinds := make([]core.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

func TestResetDealsFirstLevel(t *testing.T) {
	g := newTestGame(t, DefaultSettings(), 1)

	res := press(g)
	assert.Equal(t, []core.EventKind{core.EventLevelStart}, eventKinds(res.Events))
	assert.Equal(t, 1, res.State.Level)
	assert.Equal(t, 1000, res.State.Target)
	assert.Equal(t, 15, res.State.MovesLeft)
	assert.Equal(t, core.OutcomeNone, res.State.Outcome)
	assert.Empty(t, match3.FindMatches(g.session.Board()))

	assert.Empty(t, press(g).Events, "events are delivered once")
}

func TestStartLevel(t *testing.T) {
	g := New(WithSettings(DefaultSettings()), WithStartLevel(3))
	g.Reset(runtimeConfig(1))
	assert.Equal(t, 3, g.State().Level)

	g.SetStartLevel(99)
	g.Reset(runtimeConfig(1))
	assert.Equal(t, 1, g.State().Level, "out of range start level falls back to the first")

	assert.Equal(t, 4, g.LevelCount())
	assert.Equal(t, "Sugar Rush", g.LevelNames()[0])
}

func TestCursorClamps(t *testing.T) {
	g := newTestGame(t, DefaultSettings(), 1)
	g.cursor = match3.Pos(0, 0)

	press(g, core.ActionUp)
	press(g, core.ActionLeft)
	assert.Equal(t, match3.Pos(0, 0), g.cursor)

	press(g, core.ActionRight)
	press(g, core.ActionDown)
	assert.Equal(t, match3.Pos(1, 1), g.cursor)

	g.cursor = match3.Pos(7, 7)
	press(g, core.ActionDown)
	press(g, core.ActionRight)
	assert.Equal(t, match3.Pos(7, 7), g.cursor)
}

func TestValidSwapScores(t *testing.T) {
	g, p, q := gameWithSwap(t, instantSettings(level(1, 100000, 10)), true)

	swap(g, p, q)
	assert.False(t, g.animating(), "zero pacing resolves within the step")

	st := g.State()
	assert.Equal(t, 9, st.MovesLeft)
	assert.Equal(t, 1, st.MovesUsed)
	assert.GreaterOrEqual(t, st.Score, 3*match3.PointsPerTile)
	assert.GreaterOrEqual(t, st.MaxCombo, 1)
	assert.Equal(t, g.session.Board(), g.display)
	assert.Empty(t, match3.FindMatches(g.display))
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestInvalidSwapCostsNothing(t *testing.T) {
	g, p, q := gameWithSwap(t, instantSettings(level(1, 100000, 10)), false)
	before := g.session.Board()

	swap(g, p, q)

	assert.Equal(t, 10, g.State().MovesLeft)
	assert.Zero(t, g.State().Score)
	assert.Equal(t, before, g.session.Board())
}

func TestSwapAnimationIsPaced(t *testing.T) {
	s := DefaultSettings()
	s.Levels = []match3.LevelConfig{level(1, 100000, 10)}
	g, p, q := gameWithSwap(t, s, true)

	swap(g, p, q)
	require.True(t, g.animating())
	snap := g.Snapshot()
	assert.Equal(t, StateAnimating, snap.State)
	assert.Equal(t, "swap", snap.Phase)

	// Input is ignored while frames play
	before := g.State()
	press(g, core.ActionSelect)
	assert.Equal(t, before.MovesLeft, g.State().MovesLeft)

	// Pausing freezes playback
	press(g, core.ActionPause)
	phase := g.frame.Phase
	wait := g.wait
	for range 50 {
		press(g)
	}
	assert.Equal(t, phase, g.frame.Phase)
	assert.Equal(t, wait, g.wait)
	assert.Equal(t, StatePaused, g.Snapshot().State)
	press(g, core.ActionPause)

	settle(t, g)
	assert.Equal(t, 9, g.State().MovesLeft)
	assert.Empty(t, g.Snapshot().Phase)
}

func TestLevelCompleteAndAdvance(t *testing.T) {
	g, p, q := gameWithSwap(t, instantSettings(level(1, 10, 5), level(2, 10, 7)), true)
	press(g) // drain the start event

	res := swap(g, p, q)
	assert.Equal(t, core.OutcomeWon, res.State.Outcome)
	assert.Contains(t, eventKinds(res.Events), core.EventLevelComplete)
	assert.Equal(t, StateLevelComplete, g.Snapshot().State)

	// Board input is ignored until the player continues
	g.cursor = match3.Pos(0, 0)
	press(g, core.ActionRestart)
	assert.Equal(t, core.OutcomeWon, g.State().Outcome)

	res = press(g, core.ActionConfirm)
	assert.Equal(t, []core.EventKind{core.EventLevelStart}, eventKinds(res.Events))
	assert.Equal(t, 2, res.State.Level)
	assert.Equal(t, 7, res.State.MovesLeft)
	assert.Zero(t, res.State.Score)
}

func TestCampaignLoops(t *testing.T) {
	g, p, q := gameWithSwap(t, instantSettings(level(1, 10, 5)), true)
	press(g)

	swap(g, p, q)
	require.Equal(t, core.OutcomeWon, g.State().Outcome)

	res := press(g, core.ActionConfirm)
	assert.Equal(t, []core.EventKind{core.EventCampaignLoop, core.EventLevelStart}, eventKinds(res.Events))
	assert.Equal(t, 1, res.State.Level)
	assert.Contains(t, g.notice, "All levels cleared")
}

func TestGameOverAndRetry(t *testing.T) {
	g, p, q := gameWithSwap(t, instantSettings(level(1, 100000, 1)), true)
	press(g)

	res := swap(g, p, q)
	assert.Equal(t, core.OutcomeLost, res.State.Outcome)
	assert.Contains(t, eventKinds(res.Events), core.EventGameOver)
	assert.True(t, res.State.Ended())

	// Pause is ignored once the level has ended
	press(g, core.ActionPause)
	assert.False(t, g.State().Paused)

	res = press(g, core.ActionRestart)
	assert.Equal(t, []core.EventKind{core.EventLevelStart}, eventKinds(res.Events))
	assert.Equal(t, core.OutcomeNone, res.State.Outcome)
	assert.Equal(t, 1, res.State.MovesLeft)
	assert.Zero(t, res.State.Score)
}

func TestPointerSelectsCells(t *testing.T) {
	g := newTestGame(t, DefaultSettings(), 1)
	_, bx, by := g.layout()

	p, ok := g.cellAt(bx+1+2*cellWidth+1, by+1+3*cellHeight+1)
	require.True(t, ok)
	assert.Equal(t, match3.Pos(3, 2), p)

	_, ok = g.cellAt(bx, by)
	assert.False(t, ok, "frame is not a cell")
	_, ok = g.cellAt(bx+boardW, by+1)
	assert.False(t, ok)

	in := core.NewInputFrame()
	in.AddClick(bx+1+5*cellWidth, by+1+6*cellHeight)
	g.Step(in)
	assert.Equal(t, match3.Pos(6, 5), g.cursor)
	sel, ok := g.session.Selected()
	assert.True(t, ok)
	assert.Equal(t, match3.Pos(6, 5), sel)
}

func TestPointerAndSelectInOneFrame(t *testing.T) {
	g := newTestGame(t, DefaultSettings(), 1)
	_, bx, by := g.layout()

	in := core.NewInputFrame()
	in.AddClick(bx+1+5*cellWidth, by+1+6*cellHeight)
	in.Set(core.ActionSelect)
	g.Step(in)

	sel, ok := g.session.Selected()
	require.True(t, ok, "select must not toggle the clicked cell off")
	assert.Equal(t, match3.Pos(6, 5), sel)
	assert.Equal(t, match3.StateIdle, g.session.State())
}

func TestDeterministicDeal(t *testing.T) {
	a := newTestGame(t, DefaultSettings(), 42)
	b := newTestGame(t, DefaultSettings(), 42)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, DefaultSettings(), 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "SWEET CANDY MATCH")
	assert.Contains(t, out, "Level 1/4 Sugar Rush")
	assert.Contains(t, out, "Moves 15")
	assert.Contains(t, out, "Score 0/1000")

	g.paused = true
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRenderTooSmall(t *testing.T) {
	g := New(WithSettings(DefaultSettings()))
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Resize(80, 24)
	g.Render(screen)
	assert.False(t, strings.Contains(screen.String(), "too small"))
}

func TestBadSettings(t *testing.T) {
	g := New(WithSettings(Settings{}))
	g.Reset(runtimeConfig(1))
	require.ErrorIs(t, g.Err(), match3.ErrNoLevels)
	assert.Equal(t, core.StepResult{State: core.GameState{}}, press(g))

	require.Error(t, Configure(Settings{}))
}

func TestSettingsFromConfig(t *testing.T) {
	s, err := SettingsFromConfig(config.DefaultCandyConfig())
	require.NoError(t, err)
	assert.Len(t, s.Levels, 4)
	assert.Equal(t, config.DefaultPacing(), s.Pacing)
	assert.Equal(t, 3, s.ComboAnnounce)
}
