// Package highscore keeps the top-N leaderboard on top of a store.
package highscore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/devterrific/raucher/internal/store"
)

// DefaultLimit is the number of entries kept on the board.
const DefaultLimit = 20

// TimeLayout is the display format of an entry's timestamp.
const TimeLayout = "2006-01-02 15:04"

// UnknownPlayer replaces blank player names.
const UnknownPlayer = "Unknown"

var ErrInvalidScore = errors.New("score must be positive")

// Entry is a leaderboard row as shown to players.
type Entry struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
	DateTime   string `json:"date_time"`
}

// Board adds and lists highscores.
type Board struct {
	store store.HighscoreStore
	limit int
	now   func() time.Time
}

// NewBoard creates a board that keeps the best limit entries. A limit below
// one falls back to DefaultLimit.
func NewBoard(s store.HighscoreStore, limit int) *Board {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Board{store: s, limit: limit, now: time.Now}
}

func (b *Board) Limit() int { return b.limit }

// Add records a score and drops whatever falls off the board.
func (b *Board) Add(ctx context.Context, name string, score int) (Entry, error) {
	if score <= 0 {
		return Entry{}, ErrInvalidScore
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnknownPlayer
	}

	h := &store.Highscore{
		PlayerName: name,
		Score:      score,
		CreatedAt:  b.now().Truncate(time.Minute),
	}
	if err := b.store.Insert(ctx, h); err != nil {
		return Entry{}, fmt.Errorf("insert highscore: %w", err)
	}
	if err := b.store.Trim(ctx, b.limit); err != nil {
		return Entry{}, fmt.Errorf("trim highscores: %w", err)
	}

	slog.Info("highscore added", "player", name, "score", score)
	return toEntry(0, *h), nil
}

// Top lists the board, best first.
func (b *Board) Top(ctx context.Context) ([]Entry, error) {
	rows, err := b.store.Top(ctx, b.limit)
	if err != nil {
		return nil, fmt.Errorf("list highscores: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for i, h := range rows {
		entries = append(entries, toEntry(i+1, h))
	}
	return entries, nil
}

func toEntry(rank int, h store.Highscore) Entry {
	return Entry{
		Rank:       rank,
		PlayerName: h.PlayerName,
		Score:      h.Score,
		DateTime:   h.CreatedAt.Local().Format(TimeLayout),
	}
}
