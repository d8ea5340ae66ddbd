// Package storage provides SQLite-based persistence for keepsake runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one viewing of a deck.
type RunEntry struct {
	ID         int64
	DeckTitle  string
	Recipient  string
	LastScene  string
	Completed  bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// AnswerEntry represents a single recorded survey answer.
type AnswerEntry struct {
	ID        int64
	RunID     int64
	Question  string
	Choice    string
	CreatedAt time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deck_title TEXT NOT NULL,
			recipient TEXT NOT NULL DEFAULT '',
			last_scene TEXT NOT NULL DEFAULT '',
			completed INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			finished_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_runs_deck ON runs(deck_title);

		CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			question TEXT NOT NULL,
			choice TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_answers_run ON answers(run_id);
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

// StartRun records a new viewing of the deck and returns its ID.
func (s *Store) StartRun(deckTitle, recipient string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (deck_title, recipient) VALUES (?, ?)",
		deckTitle, recipient,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// MarkScene updates the furthest scene the run has reached.
func (s *Store) MarkScene(runID int64, sceneID string) error {
	_, err := s.db.Exec(
		"UPDATE runs SET last_scene = ? WHERE id = ?",
		sceneID, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark scene: %w", err)
	}
	return nil
}

// FinishRun marks the run as completed.
func (s *Store) FinishRun(runID int64) error {
	_, err := s.db.Exec(
		"UPDATE runs SET completed = 1, finished_at = CURRENT_TIMESTAMP WHERE id = ?",
		runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	return nil
}

// SaveAnswer records one survey answer for the run.
func (s *Store) SaveAnswer(runID int64, question, choice string) error {
	_, err := s.db.Exec(
		"INSERT INTO answers (run_id, question, choice) VALUES (?, ?, ?)",
		runID, question, choice,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save answer: %w", err)
	}
	return nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, deck_title, recipient, last_scene, completed, started_at, finished_at
		 FROM runs
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var completed int
		var startedAt, finishedAt any
		if err := rows.Scan(&e.ID, &e.DeckTitle, &e.Recipient, &e.LastScene, &completed, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Completed = completed != 0
		e.StartedAt = parseTime(startedAt)
		e.FinishedAt = parseTime(finishedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Answers retrieves all recorded answers for the run, oldest first.
func (s *Store) Answers(runID int64) ([]AnswerEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, question, choice, created_at
		 FROM answers
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query answers: %w", err)
	}
	defer rows.Close()

	var entries []AnswerEntry
	for rows.Next() {
		var e AnswerEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Question, &e.Choice, &createdAt); err != nil {
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

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
