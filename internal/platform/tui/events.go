package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/storage"
)

// scoreStore is the part of storage.Store the game loop writes to.
type scoreStore interface {
	SaveScore(gameID string, level, score int) (int64, error)
	SaveLevelRun(run storage.LevelRun) (int64, error)
}

// eventRecorder logs game events and persists finished levels.
type eventRecorder struct {
	gameID string
	player string
	store  scoreStore // nil disables persistence
	logger *log.Logger
}

func newEventRecorder(gameID, player string, store *storage.Store, logger *log.Logger) *eventRecorder {
	r := &eventRecorder{gameID: gameID, player: player, logger: logger}
	if store != nil {
		r.store = store
	}
	if r.logger == nil {
		r.logger = discardLogger()
	}
	return r
}

// record handles the events of one step.
func (r *eventRecorder) record(events []core.Event) {
	for _, ev := range events {
		st := ev.State
		switch ev.Kind {
		case core.EventLevelStart:
			r.logger.Info("level started", "player", r.player, "level", st.Level, "target", st.Target, "moves", st.MovesLeft)
		case core.EventCombo:
			r.logger.Info("combo", "player", r.player, "level", st.Level, "combo", ev.Combo)
		case core.EventCampaignLoop:
			r.logger.Info("campaign cleared, looping", "player", r.player)
		case core.EventLevelComplete, core.EventGameOver:
			r.logger.Info("level finished",
				"player", r.player,
				"level", st.Level,
				"outcome", st.Outcome,
				"score", st.Score,
				"moves_used", st.MovesUsed,
				"max_combo", st.MaxCombo,
			)
			r.save(st)
		}
	}
}

// save stores a finished level. Failures are logged and play goes on.
func (r *eventRecorder) save(st core.GameState) {
	if r.store == nil {
		return
	}
	outcome := storage.OutcomeLost
	if st.Outcome == core.OutcomeWon {
		outcome = storage.OutcomeWon
	}
	_, err := r.store.SaveLevelRun(storage.LevelRun{
		GameID:    r.gameID,
		Level:     st.Level,
		Score:     st.Score,
		Target:    st.Target,
		MovesUsed: st.MovesUsed,
		MaxCombo:  st.MaxCombo,
		Outcome:   outcome,
	})
	if err != nil {
		r.logger.Error("could not save level run", "error", err)
	}
	if st.Score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.gameID, st.Level, st.Score); err != nil {
		r.logger.Error("could not save score", "error", err)
	}
}
