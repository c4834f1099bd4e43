// Package storage persists finished episodes and per-difficulty high scores.
// The SQLite store keeps a full history through the pure-Go modernc.org/sqlite
// driver; the JSON store keeps only the best score per difficulty.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snake-arena/internal/config"
)

// ErrUnknownDifficulty is returned for difficulty keys outside the known table.
var ErrUnknownDifficulty = errors.New("storage: unknown difficulty")

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished episode.
type ScoreEntry struct {
	ID         int64
	Difficulty string
	Score      int
	Length     int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := prepare(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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

// prepare expands ~ and creates the parent directory of path.
func prepare(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

// checkDifficulty normalizes a difficulty key to its display name.
func checkDifficulty(difficulty string) (string, error) {
	d, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
	return d.String(), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(difficulty, score DESC);
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

// SaveScore records a finished episode.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(difficulty string, score, length int) (int64, error) {
	difficulty, err := checkDifficulty(difficulty)
	if err != nil {
		return 0, err
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (difficulty, score, length) VALUES (?, ?, ?)",
		difficulty, score, length,
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

// Record stores a finished episode of unknown length.
func (s *Store) Record(difficulty string, score int) (bool, error) {
	return s.RecordEpisode(difficulty, score, 0)
}

// RecordEpisode stores a finished episode and reports whether it beat the
// previous high score of its difficulty.
func (s *Store) RecordEpisode(difficulty string, score, length int) (bool, error) {
	prev, err := s.HighScore(difficulty)
	if err != nil {
		return false, err
	}
	if _, err := s.SaveScore(difficulty, score, length); err != nil {
		return false, err
	}
	return score > prev, nil
}

// TopScores retrieves the top N scores for the given difficulty.
// Results are ordered by score descending.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	difficulty, err := checkDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, length, created_at
		 FROM scores
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Score, &e.Length, &createdAt); err != nil {
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

// HighScore returns the highest score for the given difficulty.
// Returns 0 if no scores exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	difficulty, err := checkDifficulty(difficulty)
	if err != nil {
		return 0, err
	}

	var score sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE difficulty = ?",
		difficulty,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// HighScores returns the best score of every difficulty, zero when unplayed.
func (s *Store) HighScores() (map[string]int, error) {
	scores := emptyHighScores()

	rows, err := s.db.Query("SELECT difficulty, MAX(score) FROM scores GROUP BY difficulty")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var difficulty string
		var score int
		if err := rows.Scan(&difficulty, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		scores[difficulty] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return scores, nil
}

// ClearScores deletes all scores for the given difficulty, or every score
// when difficulty is empty.
func (s *Store) ClearScores(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM scores")
	} else {
		if difficulty, err = checkDifficulty(difficulty); err != nil {
			return err
		}
		_, err = s.db.Exec("DELETE FROM scores WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a difficulty.
type Stats struct {
	Difficulty string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LongestRun int
	LastPlayed time.Time
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), MAX(length), MAX(created_at)
		 FROM scores
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.LongestRun, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// emptyHighScores returns a map with every difficulty at zero.
func emptyHighScores() map[string]int {
	scores := make(map[string]int, 4)
	for _, d := range config.AllDifficulties() {
		scores[d.String()] = 0
	}
	return scores
}
