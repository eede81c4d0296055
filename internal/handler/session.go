package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/devterrific/raucher/internal/highscore"
	"github.com/devterrific/raucher/internal/room"
	"github.com/devterrific/raucher/internal/ws"
)

const (
	maxNameLength = 24
	queryTimeout  = 3 * time.Second
)

// SessionHandler starts and ends playthroughs and serves the leaderboard.
type SessionHandler struct {
	rm    *room.Manager
	board *highscore.Board
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(rm *room.Manager, board *highscore.Board) *SessionHandler {
	return &SessionHandler{rm: rm, board: board}
}

type startSessionRequest struct {
	Name string `json:"name"`
}

// HandleStartSession begins a new run, replacing the client's previous one.
func (h *SessionHandler) HandleStartSession(client *ws.Client, msg ws.Message) {
	var req startSessionRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			client.SendMessage(ws.NewErrorMessage("invalid session data"))
			return
		}
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) > maxNameLength {
		client.SendMessage(ws.NewErrorMessage("name is too long"))
		return
	}

	r := h.rm.CreateRoom(client)
	if err := r.Start(name); err != nil {
		slog.Error("failed to start session", "client", client.ID, "error", err)
		h.rm.RemoveRoom(r.ID)
		client.SendMessage(ws.NewErrorMessage("failed to start session"))
		return
	}
	r.StartGameLoop()
}

// HandleLeave ends the client's run.
func (h *SessionHandler) HandleLeave(client *ws.Client, _ ws.Message) {
	r := h.rm.FindRoomByClientID(client.ID)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("no active session"))
		return
	}
	r.Stop()
	h.rm.RemoveRoom(r.ID)
}

type highscoresResponse struct {
	Entries []highscore.Entry `json:"entries"`
}

// HandleListHighscores replies with the leaderboard.
func (h *SessionHandler) HandleListHighscores(client *ws.Client, _ ws.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	entries, err := h.board.Top(ctx)
	if err != nil {
		slog.Error("failed to list highscores", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("highscores unavailable"))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeHighscores, highscoresResponse{Entries: entries})
	client.SendMessage(resp)
}

// HandleDisconnect ends any run the client still had.
func (h *SessionHandler) HandleDisconnect(client *ws.Client) {
	r := h.rm.FindRoomByClientID(client.ID)
	if r == nil {
		return
	}
	r.Stop()
	h.rm.RemoveRoom(r.ID)
	slog.Info("session closed on disconnect", "client", client.ID, "room", r.ID)
}
