// Package candy adapts the match3 simulation to the arcade game contract:
// it turns input frames into session calls, plays cascade frames back at a
// tick-based pace and draws the board into a core.Screen.
package candy

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/match3"
	"github.com/vovakirdan/candy-match/internal/registry"
)

// GameID is the registry and score storage key.
const GameID = "candy"

// Game implements the candy match puzzle.
type Game struct {
	settings   Settings
	startLevel int // 1-based, 0 means first level
	rng        *rand.Rand
	session    *match3.Session
	tick       uint64
	err        error

	cursor  match3.Position
	display match3.Board  // Board currently on screen
	frame   *match3.Frame // Frame being shown, nil when idle
	turn    *match3.Turn
	wait    int // Ticks left on the current frame

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int

	notice      string
	noticeTicks int
	banner      string
	bannerTicks int

	pending []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithSettings overrides the package settings.
func WithSettings(s Settings) Option {
	return func(g *Game) {
		g.settings = s
	}
}

// WithStartLevel starts at a 1-based level number.
func WithStartLevel(level int) Option {
	return func(g *Game) {
		g.startLevel = level
	}
}

// New creates a new game. Nothing is dealt until Reset.
func New(opts ...Option) *Game {
	g := &Game{settings: CurrentSettings()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sweet Candy Match"
}

// LevelCount returns the number of levels in the campaign.
func (g *Game) LevelCount() int {
	return len(g.settings.Levels)
}

// LevelNames returns the display names of the levels in order.
func (g *Game) LevelNames() []string {
	names := make([]string, len(g.settings.Levels))
	for i, l := range g.settings.Levels {
		names[i] = l.Name
	}
	return names
}

// SetStartLevel selects the 1-based level the next Reset deals.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.err = nil
	g.turn = nil
	g.frame = nil
	g.wait = 0
	g.paused = false
	g.notice, g.noticeTicks = "", 0
	g.banner, g.bannerTicks = "", 0
	g.pending = nil
	g.cursor = match3.Pos(match3.BoardSize/2, match3.BoardSize/2)
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	index := 0
	if g.startLevel > 0 && g.startLevel <= len(g.settings.Levels) {
		index = g.startLevel - 1
	}
	session, err := match3.NewSession(g.settings.Levels, g.rng, match3.WithStartLevel(index))
	if err != nil {
		g.err = err
		g.session = nil
		return
	}
	g.session = session
	g.display = session.Board()
	g.emit(core.EventLevelStart, 0)
}

// Resize updates the layout for a new screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.tickTimers()

	if g.session == nil || g.tooSmall {
		return g.result()
	}

	ended := g.session.State().Terminal()
	if in.Has(core.ActionPause) && !ended {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.moveCursor(in)

	if g.animating() {
		g.advanceTurn()
		return g.result()
	}

	switch g.session.State() {
	case match3.StateLevelComplete:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionSelect) {
			g.advance()
		}
		return g.result()
	case match3.StateGameOver:
		if in.Has(core.ActionRestart) {
			g.retry()
		}
		return g.result()
	}

	clicked := false
	for _, c := range in.Clicks {
		p, ok := g.cellAt(c.X, c.Y)
		if !ok {
			continue
		}
		g.cursor = p
		clicked = true
		if g.click(p) {
			return g.result()
		}
	}
	// A pointer press already acted on the cursor cell this frame.
	if !clicked && in.Has(core.ActionSelect) {
		g.click(g.cursor)
	}

	return g.result()
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	last := match3.BoardSize - 1
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, last)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, last)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, last)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, last)
	}
}

// click selects p and reports whether a swap started.
func (g *Game) click(p match3.Position) bool {
	turn, err := g.session.Click(p)
	if err != nil {
		if !errors.Is(err, match3.ErrBusy) {
			g.setNotice(err.Error())
		}
		return false
	}
	if turn == nil {
		return false
	}
	g.startTurn(turn)
	return true
}

func (g *Game) advance() {
	looped, err := g.session.Advance()
	if err != nil {
		g.setNotice(err.Error())
		return
	}
	g.display = g.session.Board()
	if looped {
		g.setNotice("All levels cleared! Back to level 1")
		g.emit(core.EventCampaignLoop, 0)
	}
	g.emit(core.EventLevelStart, 0)
}

func (g *Game) retry() {
	if err := g.session.Retry(); err != nil {
		g.setNotice(err.Error())
		return
	}
	g.display = g.session.Board()
	g.emit(core.EventLevelStart, 0)
}

func (g *Game) emit(kind core.EventKind, combo int) {
	g.pending = append(g.pending, core.Event{Kind: kind, State: g.State(), Combo: combo})
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Events: g.pending}
	g.pending = nil
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Paused: g.paused}
	}
	s := g.session
	lvl := s.Level()
	st := core.GameState{
		Score:     s.Score(),
		Level:     lvl.Number,
		Target:    lvl.TargetScore,
		MovesLeft: s.MovesLeft(),
		MovesUsed: s.MovesUsed(),
		MaxCombo:  s.MaxCombo(),
		Paused:    g.paused || g.tooSmall,
	}
	switch s.State() {
	case match3.StateLevelComplete:
		st.Outcome = core.OutcomeWon
	case match3.StateGameOver:
		st.Outcome = core.OutcomeLost
	}
	return st
}

// Err returns the error that prevented the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}
