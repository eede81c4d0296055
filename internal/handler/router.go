package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/devterrific/raucher/internal/highscore"
	"github.com/devterrific/raucher/internal/room"
	"github.com/devterrific/raucher/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	sessions *SessionHandler
	gameplay *GameplayHandler
}

// NewRouter creates a new message router.
func NewRouter(rm *room.Manager, board *highscore.Board) *Router {
	return &Router{
		sessions: NewSessionHandler(rm, board),
		gameplay: NewGameplayHandler(rm),
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Session messages
	case ws.TypeStartSession:
		r.sessions.HandleStartSession(cm.Client, msg)
	case ws.TypeLeave:
		r.sessions.HandleLeave(cm.Client, msg)
	case ws.TypeListHighscores:
		r.sessions.HandleListHighscores(cm.Client, msg)

	// Gameplay messages
	case ws.TypePlayerInput:
		r.gameplay.HandlePlayerInput(cm.Client, msg)
	case ws.TypeInteract:
		r.gameplay.HandleInteract(cm.Client, msg)
	case ws.TypeFilterDrop:
		r.gameplay.HandleFilterDrop(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect ends the client's run, saving its score.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.sessions.HandleDisconnect(client)
}
