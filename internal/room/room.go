package room

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/devterrific/raucher/internal/game"
	"github.com/devterrific/raucher/internal/level"
	"github.com/devterrific/raucher/internal/minigame"
	"github.com/devterrific/raucher/internal/session"
	"github.com/devterrific/raucher/internal/snitch"
	"github.com/devterrific/raucher/internal/spawn"
	"github.com/devterrific/raucher/internal/ws"
)

// State is the lifecycle state of a room.
type State int

const (
	StateWaiting State = iota
	StatePlaying
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// End reasons reported in game_over.
const (
	EndCaught  = "caught"
	EndTimeout = "timeout"
	EndLeft    = "left"
)

const finishTimeout = 5 * time.Second

// Options configures every room a Manager creates.
type Options struct {
	Level      *level.Level
	Recorder   session.Recorder
	Duration   float64 // session length in seconds
	Movement   game.MovementConfig
	Difficulty minigame.DifficultySettings
	Zones      minigame.Zones
	StartScene string
}

// DefaultOptions returns options for lvl with stock tuning.
func DefaultOptions(lvl *level.Level, rec session.Recorder) Options {
	return Options{
		Level:      lvl,
		Recorder:   rec,
		Duration:   session.DefaultDuration,
		Movement:   game.DefaultMovementConfig(),
		Difficulty: minigame.DefaultDifficulty(),
		Zones:      minigame.DefaultZones(),
		StartScene: spawn.SceneBuro,
	}
}

// Room is one playthrough owned by a single client.
type Room struct {
	ID     string
	client *ws.Client
	opts   Options

	State   State
	session *session.Session
	picker  *spawn.Picker
	player  *game.Player
	scene   *level.Scene
	round   *minigame.Round

	// Latched client input, consumed by the next tick.
	input        game.Input
	interactHeld bool
	dropPending  bool

	pendingScene string
	caught       *snitch.CaughtEvent
	outbox       []ws.Message

	stopCh chan struct{}
	onEnd  func(*Room)

	mu sync.Mutex
}

// NewRoom creates a waiting room for client.
func NewRoom(id string, client *ws.Client, opts Options) *Room {
	return &Room{
		ID:      id,
		client:  client,
		opts:    opts,
		State:   StateWaiting,
		session: session.New(opts.Duration, opts.Recorder),
		picker:  spawn.NewPicker(),
	}
}

// CurrentState returns the lifecycle state under the room lock.
func (r *Room) CurrentState() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.State
}

// Client returns the owning client.
func (r *Room) Client() *ws.Client { return r.client }

// Session returns the run's session.
func (r *Room) Session() *session.Session { return r.session }

type sessionStartedMessage struct {
	RoomID   string              `json:"room_id"`
	PlayerID string              `json:"player_id"`
	Session  session.Snapshot    `json:"session"`
	Movement game.MovementConfig `json:"movement"`
}

type sceneChangedMessage struct {
	Scene    string    `json:"scene"`
	From     string    `json:"from,omitempty"`
	Spawn    string    `json:"spawn"`
	Position game.Vec2 `json:"position"`
	Minigame bool      `json:"minigame"`
}

// Start begins the run for playerName in the start scene. It must be called
// before StartGameLoop.
func (r *Room) Start(playerName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.player = game.NewPlayer(game.Vec2{}, r.opts.Movement)
	r.picker.Reset()
	if err := r.enterScene(r.opts.StartScene, ""); err != nil {
		return err
	}

	r.session.Start(strings.TrimSpace(playerName))
	r.State = StatePlaying
	r.stopCh = make(chan struct{})

	started, _ := ws.NewMessage(ws.TypeSessionStarted, sessionStartedMessage{
		RoomID:   r.ID,
		PlayerID: r.player.ID,
		Session:  r.session.Snapshot(),
		Movement: r.opts.Movement,
	})
	// session_started goes out ahead of the first scene_changed.
	r.outbox = append([]ws.Message{started}, r.outbox...)
	r.flushLocked()

	slog.Info("playthrough started", "room", r.ID, "player", playerName, "scene", r.scene.Name)
	return nil
}

// StartGameLoop runs the tick loop in its own goroutine.
func (r *Room) StartGameLoop() {
	go r.gameLoop()
}

// SetInput latches the movement axis and modifiers for the following ticks.
func (r *Room) SetInput(x float64, sprint, sneak bool) {
	if math.IsNaN(x) {
		x = 0
	}
	r.mu.Lock()
	r.input.Horizontal = math.Max(-1, math.Min(1, x))
	r.input.Sprint = sprint
	r.input.Sneak = sneak
	r.mu.Unlock()
}

// RequestInteract queues one interaction press for the next tick.
func (r *Room) RequestInteract() {
	r.mu.Lock()
	r.interactHeld = true
	r.mu.Unlock()
}

// RequestDrop queues a filter drop for the next tick.
func (r *Room) RequestDrop() {
	r.mu.Lock()
	r.dropPending = true
	r.mu.Unlock()
}

// LoadScene implements game.SceneLoader. Doors call it from inside a tick;
// the switch happens once the tick is done.
func (r *Room) LoadScene(name string) {
	if r.pendingScene == "" {
		r.pendingScene = name
	}
}

func (r *Room) handleCaught(ev snitch.CaughtEvent) {
	if r.caught == nil {
		r.caught = &ev
	}
}

// enterScene swaps the live scene. Caller must hold r.mu.
func (r *Room) enterScene(name, from string) error {
	next, err := r.opts.Level.Instantiate(name, r.player, r, r.handleCaught)
	if err != nil {
		return err
	}
	if r.scene != nil {
		// Instantiate already moved the player onto the new world.
		r.scene.Release(r.player)
	}
	r.scene = next

	spawnID := r.picker.Pick(name, from)
	pos, ok := next.SpawnPoint(spawnID)
	if !ok {
		slog.Warn("spawn point missing", "scene", name, "spawn", spawnID)
	}
	r.player.Teleport(pos)

	r.round = nil
	if next.Minigame {
		r.round = minigame.NewRound(r.opts.Difficulty, r.opts.Zones)
	}

	msg, _ := ws.NewMessage(ws.TypeSceneChanged, sceneChangedMessage{
		Scene:    name,
		From:     from,
		Spawn:    spawnID,
		Position: pos,
		Minigame: next.Minigame,
	})
	r.outbox = append(r.outbox, msg)

	slog.Info("scene loaded", "room", r.ID, "scene", name, "from", from, "spawn", spawnID)
	return nil
}

// Stop ends the run early, saving whatever was scored.
func (r *Room) Stop() {
	r.end(EndLeft)
}

type caughtMessage struct {
	Guard string `json:"guard"`
	Kind  string `json:"kind"`
}

type gameOverMessage struct {
	Reason string `json:"reason"`
	Score  int    `json:"score"`
	Saved  bool   `json:"saved"`
}

func (r *Room) end(reason string) {
	r.mu.Lock()
	if r.State != StatePlaying {
		r.mu.Unlock()
		return
	}
	r.State = StateEnded

	// Signal the game loop to stop
	select {
	case <-r.stopCh:
	default:
		close(r.stopCh)
	}

	r.session.Stop()
	caught := r.caught
	if r.scene != nil {
		r.scene.Release(r.player)
	}
	r.mu.Unlock()

	if caught != nil && reason == EndCaught {
		msg, _ := ws.NewMessage(ws.TypeCaught, caughtMessage{Guard: caught.Guard, Kind: caught.Kind.String()})
		r.client.SendMessage(msg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), finishTimeout)
	defer cancel()
	saved, err := r.session.Finish(ctx)
	if err != nil {
		slog.Error("failed to save highscore", "room", r.ID, "error", err)
	}

	msg, _ := ws.NewMessage(ws.TypeGameOver, gameOverMessage{
		Reason: reason,
		Score:  r.session.Score(),
		Saved:  saved,
	})
	r.client.SendMessage(msg)

	slog.Info("playthrough ended", "room", r.ID, "reason", reason, "score", r.session.Score(), "saved", saved)
	if r.onEnd != nil {
		r.onEnd(r)
	}
}

// Done is closed when the tick loop has been told to stop.
func (r *Room) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopCh
}

func (r *Room) flushLocked() {
	for _, m := range r.outbox {
		r.client.SendMessage(m)
	}
	r.outbox = r.outbox[:0]
}
