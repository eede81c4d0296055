package store

import (
	"context"
	"time"
)

// Highscore is one persisted leaderboard row.
type Highscore struct {
	ID         int64
	PlayerName string
	Score      int
	CreatedAt  time.Time
}

// HighscoreStore defines the interface for persistent highscore storage.
// Listings are ordered by score descending, earlier entries first on ties.
type HighscoreStore interface {
	// Insert stores a new entry and fills in its ID.
	Insert(ctx context.Context, h *Highscore) error
	// Top returns at most limit entries.
	Top(ctx context.Context, limit int) ([]Highscore, error)
	// Trim deletes every entry outside the best keep.
	Trim(ctx context.Context, keep int) error
	// Close releases database resources.
	Close() error
}
