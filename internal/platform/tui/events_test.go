package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEventRecorderSavesFinishedLevels(t *testing.T) {
	store := openTestStore(t)
	r := newEventRecorder("candy", "tester", store, nil)

	r.record([]core.Event{
		{Kind: core.EventLevelStart, State: core.GameState{Level: 1, Target: 1000, MovesLeft: 15}},
		{Kind: core.EventCombo, Combo: 3},
		{Kind: core.EventLevelComplete, State: core.GameState{
			Level: 1, Target: 1000, Score: 1240, MovesUsed: 9, MaxCombo: 3, Outcome: core.OutcomeWon,
		}},
		{Kind: core.EventGameOver, State: core.GameState{
			Level: 2, Target: 2500, Score: 0, MovesUsed: 20, Outcome: core.OutcomeLost,
		}},
	})

	runs, err := store.RecentLevelRuns("candy", 10)
	if err != nil {
		t.Fatalf("RecentLevelRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	// Newest first
	if runs[0].Level != 2 || runs[0].Outcome != storage.OutcomeLost {
		t.Errorf("runs[0] = level %d %s, want level 2 lost", runs[0].Level, runs[0].Outcome)
	}
	if runs[1].Score != 1240 || runs[1].MaxCombo != 3 || runs[1].Outcome != storage.OutcomeWon {
		t.Errorf("runs[1] = %+v, want the won level 1 run", runs[1])
	}

	// A zero score is a run but not a high score
	scores, err := store.TopScores("candy", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1240 || scores[0].Level != 1 {
		t.Errorf("scores = %+v, want one 1240 on level 1", scores)
	}
}

func TestEventRecorderWithoutStore(t *testing.T) {
	r := newEventRecorder("candy", "tester", nil, nil)
	// Must not panic
	r.record([]core.Event{{Kind: core.EventLevelComplete, State: core.GameState{Score: 10, Outcome: core.OutcomeWon}}})
}
