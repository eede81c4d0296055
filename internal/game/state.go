package game

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Layer classifies a body for overlap and ray queries. Layers are bit flags
// so a query mask can combine several of them.
type Layer uint32

const (
	LayerNone   Layer = 0
	LayerPlayer Layer = 1 << iota
	LayerHidden
	LayerInteractable
	LayerGuard
)

func (l Layer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerHidden:
		return "hidden"
	case LayerInteractable:
		return "interactable"
	case LayerGuard:
		return "guard"
	default:
		return "none"
	}
}

// MarshalJSON serializes Layer as a string.
func (l Layer) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// In reports whether l is part of mask.
func (l Layer) In(mask Layer) bool {
	return l&mask != 0
}

// Reason is an opaque token naming one independent requester of a hidden or
// movement-locked state. Only identity matters. The empty Reason is treated
// as an absent requester and ignored everywhere.
type Reason string

// NewReason mints a fresh, unique reason token.
func NewReason() Reason {
	return Reason(uuid.New().String())
}

// Valid reports whether r names a requester.
func (r Reason) Valid() bool {
	return r != ""
}
