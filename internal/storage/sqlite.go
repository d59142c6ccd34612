package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tflap/internal/config"
	"github.com/vovakirdan/tflap/internal/flappy"
)

// DefaultDBPath is the database used when no path is configured.
const DefaultDBPath = "~/.tflap/scores.db"

// LocalKey is the key used for the local player.
const LocalKey = "local"

// SQLiteStore keeps one high score per key. Keys separate players, for
// example one per SSH user.
type SQLiteStore struct {
	db *sql.DB
}

// Entry is a stored high score.
type Entry struct {
	Key       string
	Score     int
	UpdatedAt time.Time
}

// OpenSQLite creates or opens the database at dbPath.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Sessions write from their own goroutines; one connection keeps
	// SQLite from reporting "database is locked".
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL CHECK (score >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_highscores_top ON highscores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the score stored under key, or 0 if there is none.
func (s *SQLiteStore) HighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM highscores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores score under key. A lower score never replaces a
// higher one, so two sessions of the same player cannot regress the record.
func (s *SQLiteStore) SaveHighScore(key string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative score %d", score)
	}

	_, err := s.db.Exec(
		`INSERT INTO highscores (key, score) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   score = MAX(score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Reset deletes the score stored under key.
func (s *SQLiteStore) Reset(key string) error {
	if _, err := s.db.Exec("DELETE FROM highscores WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// Top returns up to limit entries ordered by score descending.
func (s *SQLiteStore) Top(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT key, score, updated_at
		 FROM highscores
		 ORDER BY score DESC, key ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updatedAt any
		if err := rows.Scan(&e.Key, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Gateway returns a flappy.Gateway bound to key.
func (s *SQLiteStore) Gateway(key string) *KeyGateway {
	return &KeyGateway{store: s, key: key}
}

// KeyGateway adapts one key of a SQLiteStore to flappy.Gateway.
type KeyGateway struct {
	store *SQLiteStore
	key   string
}

var _ flappy.Gateway = (*KeyGateway)(nil)

// Key returns the key the gateway reads and writes.
func (g *KeyGateway) Key() string {
	return g.key
}

// Load implements flappy.Gateway.
func (g *KeyGateway) Load() (int, error) {
	return g.store.HighScore(g.key)
}

// Save implements flappy.Gateway.
func (g *KeyGateway) Save(score int) error {
	return g.store.SaveHighScore(g.key, score)
}

// Reset deletes the score for the gateway's key.
func (g *KeyGateway) Reset() error {
	return g.store.Reset(g.key)
}
