package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS highscores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    player_name TEXT NOT NULL,
    score INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_highscores_score ON highscores(score DESC, id ASC);
`

// SQLiteStore implements HighscoreStore on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Insert stores a new entry.
func (s *SQLiteStore) Insert(ctx context.Context, h *Highscore) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO highscores (player_name, score, created_at) VALUES (?, ?, ?)`,
		h.PlayerName, h.Score, h.CreatedAt.UTC().UnixMilli())
	if err != nil {
		return err
	}
	h.ID, err = res.LastInsertId()
	return err
}

// Top returns the best entries.
func (s *SQLiteStore) Top(ctx context.Context, limit int) ([]Highscore, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_name, score, created_at
		 FROM highscores ORDER BY score DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Highscore
	for rows.Next() {
		var (
			h  Highscore
			ms int64
		)
		if err := rows.Scan(&h.ID, &h.PlayerName, &h.Score, &ms); err != nil {
			return nil, fmt.Errorf("scan highscore: %w", err)
		}
		h.CreatedAt = time.UnixMilli(ms).UTC()
		out = append(out, h)
	}
	return out, rows.Err()
}

// Trim deletes everything outside the best keep entries.
func (s *SQLiteStore) Trim(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM highscores WHERE id NOT IN (
		     SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT ?
		 )`, keep)
	return err
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
