// Package storage persists high scores in SQLite. It uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/catnip-games/omas-adventure/internal/session"
)

// TopSize is how many scores the table keeps. Every save trims the rest.
const TopSize = 10

// ScoreEntry is one saved run.
type ScoreEntry struct {
	ID        int64
	Name      string
	Score     int
	Round     int
	CreatedAt time.Time
}

// Stats aggregates the saved runs.
type Stats struct {
	Plays     int
	BestScore int
	BestRound int
	AvgScore  float64
}

// Store manages the high-score table plus a cached copy of the current
// top scores. The cache answers Qualifies and Top without a query, and
// lets one Store back every SSH session at once.
type Store struct {
	db *sql.DB

	mu  sync.RWMutex
	top []ScoreEntry
}

// Ensure Store satisfies the session layer's score interface.
var _ session.ScoreStore = (*Store)(nil)

// Open creates or opens the score database at dbPath. It expands a
// leading ~, creates parent directories, runs migrations, and warms the
// top-score cache.
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
	if err := store.refreshCache(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			round INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(score DESC);
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

// Save records a finished run, trims the table back to the top TopSize
// rows, and reports whether the new run made the cut. Ties keep the
// sitting entry.
func (s *Store) Save(name string, score, round int) (bool, error) {
	res, err := s.db.Exec(
		"INSERT INTO high_scores (name, score, round) VALUES (?, ?, ?)",
		name, score, round,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	// created_at has second granularity, so id breaks same-second ties.
	_, err = s.db.Exec(
		`DELETE FROM high_scores
		 WHERE id NOT IN (
			SELECT id FROM high_scores
			ORDER BY score DESC, created_at ASC, id ASC
			LIMIT ?
		 )`,
		TopSize,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot trim scores: %w", err)
	}

	if err := s.refreshCache(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.top {
		if e.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// refreshCache reloads the cached top scores from the table.
func (s *Store) refreshCache() error {
	rows, err := s.db.Query(
		`SELECT id, name, score, round, created_at
		 FROM high_scores
		 ORDER BY score DESC, created_at ASC, id ASC
		 LIMIT ?`,
		TopSize,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot query top scores: %w", err)
	}
	defer rows.Close()

	var top []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Round, &createdAt); err != nil {
			return fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		top = append(top, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: row iteration error: %w", err)
	}

	s.mu.Lock()
	s.top = top
	s.mu.Unlock()
	return nil
}

// Top returns a copy of the cached top scores, best first.
func (s *Store) Top() []ScoreEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ScoreEntry, len(s.top))
	copy(out, s.top)
	return out
}

// Qualifies reports whether score would enter the top table: anything
// qualifies while the table has room, afterwards it must beat the
// current cut. Ties lose to the sitting entry.
func (s *Store) Qualifies(score int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.top) < TopSize {
		return true
	}
	return score > s.top[len(s.top)-1].Score
}

// Best returns the highest saved score, 0 when none exist.
func (s *Store) Best() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.top) == 0 {
		return 0
	}
	return s.top[0].Score
}

// Stats aggregates the saved runs: play count, best score, deepest
// round, and the average score.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(round), 0), COALESCE(AVG(score), 0)
		 FROM high_scores`,
	).Scan(&st.Plays, &st.BestScore, &st.BestRound, &st.AvgScore)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// parseCreatedAt handles both time.Time and string representations the
// driver may hand back for DATETIME columns.
func parseCreatedAt(v any) time.Time {
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
