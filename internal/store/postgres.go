package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS highscores (
    id BIGSERIAL PRIMARY KEY,
    player_name TEXT NOT NULL,
    score INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_highscores_score ON highscores(score DESC, id ASC);
`

// PostgresStore implements HighscoreStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Insert stores a new entry.
func (s *PostgresStore) Insert(ctx context.Context, h *Highscore) error {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO highscores (player_name, score, created_at)
		 VALUES ($1, $2, $3) RETURNING id`,
		h.PlayerName, h.Score, h.CreatedAt)
	return row.Scan(&h.ID)
}

// Top returns the best entries.
func (s *PostgresStore) Top(ctx context.Context, limit int) ([]Highscore, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, player_name, score, created_at
		 FROM highscores ORDER BY score DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanHighscore)
}

// Trim deletes everything outside the best keep entries.
func (s *PostgresStore) Trim(ctx context.Context, keep int) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM highscores WHERE id NOT IN (
		     SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT $1
		 )`, keep)
	return err
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanHighscore(row pgx.CollectableRow) (Highscore, error) {
	var h Highscore
	err := row.Scan(&h.ID, &h.PlayerName, &h.Score, &h.CreatedAt)
	return h, err
}
