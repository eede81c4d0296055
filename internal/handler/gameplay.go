package handler

import (
	"encoding/json"
	"math"

	"github.com/devterrific/raucher/internal/room"
	"github.com/devterrific/raucher/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	rm *room.Manager
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(rm *room.Manager) *GameplayHandler {
	return &GameplayHandler{rm: rm}
}

type playerInputRequest struct {
	X      float64 `json:"x"`
	Sprint bool    `json:"sprint"`
	Sneak  bool    `json:"sneak"`
}

// HandlePlayerInput latches the movement input.
func (h *GameplayHandler) HandlePlayerInput(client *ws.Client, msg ws.Message) {
	var req playerInputRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid input data"))
		return
	}
	if math.IsInf(req.X, 0) || math.Abs(req.X) > 1 {
		client.SendMessage(ws.NewErrorMessage("axis out of range"))
		return
	}

	r := h.playingRoom(client)
	if r == nil {
		return
	}
	r.SetInput(req.X, req.Sprint, req.Sneak)
}

// HandleInteract queues one interaction press.
func (h *GameplayHandler) HandleInteract(client *ws.Client, _ ws.Message) {
	if r := h.playingRoom(client); r != nil {
		r.RequestInteract()
	}
}

// HandleFilterDrop queues a filter drop in the minigame.
func (h *GameplayHandler) HandleFilterDrop(client *ws.Client, _ ws.Message) {
	if r := h.playingRoom(client); r != nil {
		r.RequestDrop()
	}
}

// playingRoom returns the client's running room, replying with an error
// when there is none.
func (h *GameplayHandler) playingRoom(client *ws.Client) *room.Room {
	r := h.rm.FindRoomByClientID(client.ID)
	if r == nil || r.CurrentState() != room.StatePlaying {
		client.SendMessage(ws.NewErrorMessage("game is not in progress"))
		return nil
	}
	return r
}
