package room

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/devterrific/raucher/internal/ws"
)

// Manager manages all active rooms. Each client owns at most one.
type Manager struct {
	opts     Options
	rooms    map[string]*Room // room ID -> room
	byClient map[string]*Room // client ID -> room
	mu       sync.RWMutex
}

// NewManager creates a room manager whose rooms share opts.
func NewManager(opts Options) *Manager {
	return &Manager{
		opts:     opts,
		rooms:    make(map[string]*Room),
		byClient: make(map[string]*Room),
	}
}

// CreateRoom creates a waiting room for client, replacing any room the
// client already had. The replaced room is stopped.
func (m *Manager) CreateRoom(client *ws.Client) *Room {
	m.mu.Lock()
	old := m.byClient[client.ID]
	r := NewRoom(uuid.New().String(), client, m.opts)
	r.onEnd = m.release
	m.rooms[r.ID] = r
	m.byClient[client.ID] = r
	m.mu.Unlock()

	if old != nil {
		m.RemoveRoom(old.ID)
		old.Stop()
	}

	slog.Info("room created", "room", r.ID, "client", client.ID)
	return r
}

// GetRoom returns a room by its ID.
func (m *Manager) GetRoom(id string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[id]
}

// FindRoomByClientID returns the room owned by a client.
func (m *Manager) FindRoomByClientID(clientID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byClient[clientID]
}

// RemoveRoom forgets a room.
func (m *Manager) RemoveRoom(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[id]
	if !ok {
		return
	}
	delete(m.rooms, id)
	if m.byClient[r.client.ID] == r {
		delete(m.byClient, r.client.ID)
	}
	slog.Info("room removed", "room", id)
}

// RoomCount returns the number of active rooms.
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

func (m *Manager) release(r *Room) {
	m.RemoveRoom(r.ID)
}
