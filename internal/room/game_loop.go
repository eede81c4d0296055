package room

import (
	"log/slog"
	"time"

	"github.com/devterrific/raucher/internal/game"
	"github.com/devterrific/raucher/internal/minigame"
	"github.com/devterrific/raucher/internal/session"
	"github.com/devterrific/raucher/internal/ws"
)

type gameStateMessage struct {
	Scene    string           `json:"scene"`
	Player   playerState      `json:"player"`
	Snitches []snitchState    `json:"snitches"`
	Session  session.Snapshot `json:"session"`
	Minigame *minigameState   `json:"minigame,omitempty"`
}

type playerState struct {
	ID       string     `json:"id"`
	Position game.Vec2  `json:"position"`
	Velocity game.Vec2  `json:"velocity"`
	Facing   float64    `json:"facing"`
	Sprite   string     `json:"sprite"`
	Stamina  float64    `json:"stamina"`
	Layer    game.Layer `json:"layer"`
	CanMove  bool       `json:"can_move"`
	Sneaking bool       `json:"sneaking"`
}

type snitchState struct {
	ID        string    `json:"id"`
	Position  game.Vec2 `json:"position"`
	Facing    float64   `json:"facing"`
	Waiting   bool      `json:"waiting"`
	Frozen    bool      `json:"frozen"`
	Suspicion float64   `json:"suspicion"`
}

type minigameState struct {
	Phase     minigame.Phase   `json:"phase"`
	Filter    game.Vec2        `json:"filter"`
	Countdown float64          `json:"countdown"`
	Result    *minigame.Result `json:"result,omitempty"`
}

type minigameResultMessage struct {
	minigame.Result
	Total int `json:"total"`
}

// gameLoop runs the tick loop at TickRate frequency.
func (r *Room) gameLoop() {
	ticker := time.NewTicker(game.TickInterval)
	defer ticker.Stop()

	dt := game.TickInterval.Seconds()
	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			if reason := r.tick(dt); reason != "" {
				r.end(reason)
				return
			}
		}
	}
}

// tick advances the playthrough by dt seconds and sends the resulting
// messages. It returns a non-empty end reason when the run is over.
func (r *Room) tick(dt float64) string {
	r.mu.Lock()
	if r.State != StatePlaying {
		r.mu.Unlock()
		return ""
	}

	reason := r.stepLocked(dt)

	state, _ := ws.NewMessage(ws.TypeGameState, r.snapshotLocked())
	out := append(r.outbox, state)
	r.outbox = nil
	r.mu.Unlock()

	for _, m := range out {
		r.client.SendMessage(m)
	}
	return reason
}

// stepLocked is one simulation frame. Caller must hold r.mu.
func (r *Room) stepLocked(dt float64) string {
	in := r.input
	in.Interact = r.interactHeld
	r.interactHeld = false

	r.player.Update(dt, in)
	r.player.FixedUpdate(dt)

	r.scene.Update(dt)
	if r.caught != nil {
		return EndCaught
	}

	if r.round != nil {
		r.stepMinigame(dt)
	}
	r.dropPending = false

	if r.session.Tick(dt) {
		return EndTimeout
	}

	if r.pendingScene != "" {
		target, from := r.pendingScene, r.scene.Name
		r.pendingScene = ""
		if err := r.enterScene(target, from); err != nil {
			slog.Error("scene change failed", "room", r.ID, "scene", target, "error", err)
		}
	}
	return ""
}

func (r *Room) stepMinigame(dt float64) {
	if r.dropPending {
		if r.round.Phase() == minigame.PhaseResults {
			// Another drop after the results starts a new round.
			r.round = minigame.NewRound(r.opts.Difficulty, r.opts.Zones)
		} else if res, ok := r.round.Drop(); ok {
			r.award(res)
		}
	}
	if res := r.round.Update(dt); res != nil {
		r.award(*res)
	}
}

func (r *Room) award(res minigame.Result) {
	r.session.AddPoints(res.Points, "minigame "+res.Grade.String())
	msg, _ := ws.NewMessage(ws.TypeMinigameResult, minigameResultMessage{
		Result: res,
		Total:  r.session.Score(),
	})
	r.outbox = append(r.outbox, msg)
}

func (r *Room) snapshotLocked() gameStateMessage {
	p := r.player
	snap := gameStateMessage{
		Scene: r.scene.Name,
		Player: playerState{
			ID:       p.ID,
			Position: p.Position,
			Velocity: p.Velocity,
			Facing:   p.Facing,
			Sprite:   p.Sprite,
			Stamina:  p.Stamina(),
			Layer:    p.Layer(),
			CanMove:  p.CanMove(),
			Sneaking: p.IsSneaking(),
		},
		Snitches: make([]snitchState, 0, len(r.scene.Snitches)),
		Session:  r.session.Snapshot(),
	}
	for _, g := range r.scene.Snitches {
		snap.Snitches = append(snap.Snitches, snitchState{
			ID:        g.ID,
			Position:  g.Patrol.Position(),
			Facing:    g.Patrol.Facing(),
			Waiting:   g.Patrol.IsWaiting(),
			Frozen:    !g.Patrol.CanMove(),
			Suspicion: g.Vision.Suspicion(),
		})
	}
	if r.round != nil {
		ms := &minigameState{
			Phase:     r.round.Phase(),
			Filter:    r.round.Aimer().Position(),
			Countdown: r.round.Countdown(),
		}
		if res, ok := r.round.Result(); ok {
			ms.Result = &res
		}
		snap.Minigame = ms
	}
	return snap
}
