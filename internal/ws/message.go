package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Session
const (
	TypeStartSession   = "start_session"
	TypeSessionStarted = "session_started"
	TypeLeave          = "leave"
	TypeListHighscores = "list_highscores"
	TypeHighscores     = "highscores"
)

// Message types - Gameplay
const (
	TypePlayerInput    = "player_input"
	TypeInteract       = "interact"
	TypeFilterDrop     = "filter_drop"
	TypeGameState      = "game_state"
	TypeSceneChanged   = "scene_changed"
	TypeCaught         = "caught"
	TypeMinigameResult = "minigame_result"
	TypeGameOver       = "game_over"
)

// Message types - System
const (
	TypeError = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
