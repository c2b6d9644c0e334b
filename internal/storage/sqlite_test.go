package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// Reopening runs migrations again without error
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	again.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ level, score int }{{1, 100}, {1, 50}, {2, 200}} {
		if _, err := store.SaveScore("candy", s.level, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 1, 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("candy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[0].Level != 2 {
		t.Errorf("First score = %+v, expected 200 on level 2", scores[0])
	}
	if scores[2].Score != 50 {
		t.Errorf("Last score = %d, expected 50", scores[2].Score)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	top, err := store.TopScores("candy", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 {
		t.Errorf("limit not applied, got %d", len(top))
	}

	high, err := store.HighScore("candy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore = %d, expected 200", high)
	}

	none, err := store.HighScore("unknown")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if none != 0 {
		t.Errorf("HighScore for unknown game = %d, expected 0", none)
	}
}

func TestStoreLevelRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []LevelRun{
		{GameID: "candy", Level: 1, Score: 1200, Target: 1000, MovesUsed: 12, MaxCombo: 3, Outcome: OutcomeWon},
		{GameID: "candy", Level: 1, Score: 600, Target: 1000, MovesUsed: 15, MaxCombo: 2, Outcome: OutcomeLost},
		{GameID: "candy", Level: 2, Score: 2700, Target: 2500, MovesUsed: 19, MaxCombo: 4, Outcome: OutcomeWon},
		{GameID: "candy", RunID: "fixed-id", Level: 2, Score: 100, Target: 2500, MovesUsed: 20, Outcome: OutcomeLost},
	}
	for _, r := range runs {
		if _, err := store.SaveLevelRun(r); err != nil {
			t.Fatalf("SaveLevelRun() failed: %v", err)
		}
	}

	if _, err := store.SaveLevelRun(LevelRun{GameID: "candy", Level: 1, Outcome: "draw"}); err == nil {
		t.Error("expected error for invalid outcome")
	}
	if _, err := store.SaveLevelRun(LevelRun{GameID: "candy", RunID: "fixed-id", Level: 1, Outcome: OutcomeWon}); err == nil {
		t.Error("expected error for duplicate run id")
	}

	recent, err := store.RecentLevelRuns("candy", 2)
	if err != nil {
		t.Fatalf("RecentLevelRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].RunID != "fixed-id" {
		t.Errorf("newest run = %+v, expected fixed-id", recent[0])
	}
	if recent[1].RunID == "" {
		t.Error("run id should be generated")
	}

	got, err := store.LevelRunByID("fixed-id")
	if err != nil {
		t.Fatalf("LevelRunByID() failed: %v", err)
	}
	if got == nil || got.Score != 100 || got.Outcome != OutcomeLost {
		t.Errorf("LevelRunByID = %+v", got)
	}
	missing, err := store.LevelRunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("LevelRunByID(nope) = %v, %v; expected nil, nil", missing, err)
	}

	bests, err := store.BestLevelScores("candy")
	if err != nil {
		t.Fatalf("BestLevelScores() failed: %v", err)
	}
	want := []LevelBest{
		{Level: 1, BestScore: 1200, Plays: 2, Wins: 1, BestCombo: 3},
		{Level: 2, BestScore: 2700, Plays: 2, Wins: 1, BestCombo: 4},
	}
	if len(bests) != len(want) {
		t.Fatalf("BestLevelScores = %+v", bests)
	}
	for i := range want {
		if bests[i] != want[i] {
			t.Errorf("level best %d = %+v, expected %+v", i, bests[i], want[i])
		}
	}

	stats, err := store.GetGameStats("candy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Plays != 4 || stats.Wins != 2 || stats.HighScore != 2700 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreEmptyStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("candy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Plays != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	bests, err := store.BestLevelScores("candy")
	if err != nil {
		t.Fatalf("BestLevelScores() failed: %v", err)
	}
	if len(bests) != 0 {
		t.Errorf("expected no level bests, got %+v", bests)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("candy", 1, 100)
	store.SaveScore("other", 1, 200)
	store.SaveLevelRun(LevelRun{GameID: "candy", Level: 1, Score: 100, Target: 1000, Outcome: OutcomeLost})

	if err := store.ClearScores("candy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("candy", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentLevelRuns("candy", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should be unaffected, got %d", len(other))
	}
}
