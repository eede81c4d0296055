// Package session tracks one run: player name, score and the countdown.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/devterrific/raucher/internal/highscore"
)

// DefaultDuration is the run length in seconds.
const DefaultDuration = 300.0

// Recorder persists a finished run.
type Recorder interface {
	Add(ctx context.Context, name string, score int) (highscore.Entry, error)
}

// Snapshot is the session state sent to clients.
type Snapshot struct {
	PlayerName string  `json:"player_name"`
	Score      int     `json:"score"`
	Remaining  float64 `json:"remaining"`
	Running    bool    `json:"running"`
}

// Session is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	duration float64
	recorder Recorder

	playerName string
	score      int
	remaining  float64
	running    bool
	saved      bool
	saving     bool
}

// New creates an idle session. A non-positive duration uses DefaultDuration.
func New(duration float64, rec Recorder) *Session {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Session{duration: duration, recorder: rec}
}

// Start begins a fresh run.
func (s *Session) Start(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playerName = name
	s.score = 0
	s.remaining = s.duration
	s.running = true
	s.saved = false
	slog.Info("session started", "player", name, "duration", s.duration)
}

// AddPoints adds to the score while the run is going. Negative amounts count
// as zero.
func (s *Session) AddPoints(n int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	if n < 0 {
		n = 0
	}
	s.score += n
	slog.Debug("points added", "player", s.playerName, "points", n, "reason", reason, "score", s.score)
}

// Tick counts the timer down. It reports true once the time has run out.
func (s *Session) Tick(dt float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return false
	}
	s.remaining -= dt
	if s.remaining <= 0 {
		s.remaining = 0
		return true
	}
	return false
}

// Stop halts the timer; the score stays.
func (s *Session) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Finish saves the run once. Runs without points are marked saved without
// touching the board. A failed write leaves the run unsaved so Finish can be
// retried. It reports whether an entry was written.
func (s *Session) Finish(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.saved || s.saving {
		s.mu.Unlock()
		return false, nil
	}
	if s.score <= 0 || s.recorder == nil {
		s.saved = true
		s.mu.Unlock()
		return false, nil
	}
	if strings.TrimSpace(s.playerName) == "" {
		s.playerName = highscore.UnknownPlayer
	}
	name, score := s.playerName, s.score
	s.saving = true
	s.mu.Unlock()

	_, err := s.recorder.Add(ctx, name, score)

	s.mu.Lock()
	s.saving = false
	if err == nil {
		s.saved = true
	}
	s.mu.Unlock()

	if err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}
	return true, nil
}

// Reset clears everything for a new run.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playerName = ""
	s.score = 0
	s.remaining = 0
	s.running = false
	s.saved = false
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		PlayerName: s.playerName,
		Score:      s.score,
		Remaining:  s.remaining,
		Running:    s.running,
	}
}
