package candy

import (
	"fmt"

	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/match3"
)

const (
	noticeDuration = 120 // ~2s at 60fps
	bannerDuration = 60
)

// startTurn begins playing a turn's frames.
func (g *Game) startTurn(t *match3.Turn) {
	g.turn = t
	g.wait = 0
	g.advanceTurn()
}

// advanceTurn is called once per tick while a turn is playing. It waits
// out the current frame, then pulls frames until one has a nonzero
// duration or the turn settles.
func (g *Game) advanceTurn() {
	if g.wait > 0 {
		g.wait--
		if g.wait > 0 {
			return
		}
	}
	for g.turn != nil {
		f, ok := g.turn.Next()
		if !ok {
			g.settleTurn()
			return
		}
		g.showFrame(f)
		if g.wait > 0 {
			return
		}
	}
}

// showFrame puts a frame on screen for its phase's duration.
func (g *Game) showFrame(f match3.Frame) {
	g.frame = &f
	g.display = f.Board
	g.wait = g.settings.Pacing.Ticks(f.Phase)

	if f.Phase == match3.PhaseMark && g.settings.ComboAnnounce > 0 && f.Combo >= g.settings.ComboAnnounce {
		g.banner = fmt.Sprintf("COMBO x%d!", f.Combo)
		g.bannerTicks = bannerDuration
		g.emit(core.EventCombo, f.Combo)
	}
	if f.Phase == match3.PhaseReshuffle {
		g.setNotice("Endless cascade, board reshuffled")
	}
}

// settleTurn returns to the live board and reports a finished level.
func (g *Game) settleTurn() {
	if err := g.turn.Err(); err != nil {
		g.setNotice(err.Error())
	}
	g.turn = nil
	g.frame = nil
	g.wait = 0
	g.display = g.session.Board()

	switch g.session.State() {
	case match3.StateLevelComplete:
		g.emit(core.EventLevelComplete, 0)
	case match3.StateGameOver:
		g.emit(core.EventGameOver, 0)
	}
}

// animating reports whether turn frames are still playing.
func (g *Game) animating() bool {
	return g.turn != nil
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTicks = noticeDuration
}

// tickTimers counts down the transient messages.
func (g *Game) tickTimers() {
	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}
	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}
}
