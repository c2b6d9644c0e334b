// Package storage provides SQLite-based persistence for high scores and
// per-level run history. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Outcome values stored in level_runs.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Level     int
	Score     int
	CreatedAt time.Time
}

// LevelRun is one finished attempt at a level.
type LevelRun struct {
	ID        int64
	RunID     string // Assigned on save if empty
	GameID    string
	Level     int
	Score     int
	Target    int
	MovesUsed int
	MaxCombo  int
	Outcome   string // OutcomeWon or OutcomeLost
	CreatedAt time.Time
}

// LevelBest aggregates the runs of one level.
type LevelBest struct {
	Level     int
	BestScore int
	Plays     int
	Wins      int
	BestCombo int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS level_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			target INTEGER NOT NULL,
			moves_used INTEGER NOT NULL,
			max_combo INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_runs_level ON level_runs(game_id, level);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game and level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, level, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, level, score) VALUES (?, ?, ?)",
		gameID, level, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Level, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores and level runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM level_runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear level runs: %w", err)
	}
	return nil
}

// SaveLevelRun records a finished level attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveLevelRun(run LevelRun) (int64, error) {
	if run.Outcome != OutcomeWon && run.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: invalid outcome %q", run.Outcome)
	}
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO level_runs
		 (run_id, game_id, level, score, target, moves_used, max_combo, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.GameID,
		run.Level,
		run.Score,
		run.Target,
		run.MovesUsed,
		run.MaxCombo,
		run.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// LevelRunByID retrieves a level run by its run ID.
// Returns nil without error if there is none.
func (s *Store) LevelRunByID(runID string) (*LevelRun, error) {
	var run LevelRun
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, run_id, game_id, level, score, target, moves_used, max_combo, outcome, created_at
		 FROM level_runs
		 WHERE run_id = ?`,
		runID,
	).Scan(
		&run.ID,
		&run.RunID,
		&run.GameID,
		&run.Level,
		&run.Score,
		&run.Target,
		&run.MovesUsed,
		&run.MaxCombo,
		&run.Outcome,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level run: %w", err)
	}

	run.CreatedAt = parseTime(createdAt)
	return &run, nil
}

// RecentLevelRuns retrieves the most recent runs for a game, newest first.
func (s *Store) RecentLevelRuns(gameID string, limit int) ([]LevelRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, level, score, target, moves_used, max_combo, outcome, created_at
		 FROM level_runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level runs: %w", err)
	}
	defer rows.Close()

	var runs []LevelRun
	for rows.Next() {
		var run LevelRun
		var createdAt any
		if err := rows.Scan(
			&run.ID,
			&run.RunID,
			&run.GameID,
			&run.Level,
			&run.Score,
			&run.Target,
			&run.MovesUsed,
			&run.MaxCombo,
			&run.Outcome,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.CreatedAt = parseTime(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestLevelScores aggregates the runs of a game per level, ordered by level.
func (s *Store) BestLevelScores(gameID string) ([]LevelBest, error) {
	rows, err := s.db.Query(
		`SELECT level, MAX(score), COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), MAX(max_combo)
		 FROM level_runs
		 WHERE game_id = ?
		 GROUP BY level
		 ORDER BY level`,
		OutcomeWon, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level bests: %w", err)
	}
	defer rows.Close()

	var bests []LevelBest
	for rows.Next() {
		var b LevelBest
		if err := rows.Scan(&b.Level, &b.BestScore, &b.Plays, &b.Wins, &b.BestCombo); err != nil {
			return nil, fmt.Errorf("storage: cannot scan level best: %w", err)
		}
		bests = append(bests, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return bests, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Plays      int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated run statistics for a game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM level_runs WHERE game_id = ?`,
		OutcomeWon, gameID,
	).Scan(&stats.Plays, &stats.Wins, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
