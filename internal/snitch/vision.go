package snitch

import (
	"encoding/json"
	"log/slog"

	"github.com/devterrific/raucher/internal/game"
)

// catchTolerance absorbs float drift when summing frame deltas up to the
// catch threshold.
const catchTolerance = 1e-9

// Default vision tuning.
const (
	DefaultViewDistance = 5.0
	DefaultTimeToCatch  = 3.0
)

// CatchKind names the ray that caught the player.
type CatchKind int

const (
	CatchNone CatchKind = iota
	CatchInstant
	CatchSuspicion
)

func (k CatchKind) String() string {
	switch k {
	case CatchInstant:
		return "instant"
	case CatchSuspicion:
		return "suspicion"
	default:
		return "none"
	}
}

// CaughtEvent reports that a guard caught a detectable body.
type CaughtEvent struct {
	Guard string
	Kind  CatchKind
	Body  game.Body
}

// Pose is what the sensor needs from the guard it is mounted on.
type Pose interface {
	Position() game.Vec2
	Facing() float64
}

// Gate receives the sensor's verdict on whether the guard may keep walking.
type Gate interface {
	SetCanMove(bool)
}

// VisionConfig holds ray offsets (relative to the guard, mirrored by its
// facing) and thresholds. A nil offset disables that ray.
type VisionConfig struct {
	EyeOffset       *game.Vec2 `json:"eye"`
	SuspicionOffset *game.Vec2 `json:"suspicion"`
	ViewDistance    float64    `json:"view_distance"`
	TimeToCatch     float64    `json:"time_to_catch"`
	Mask            game.Layer `json:"-"`
}

// DefaultVisionConfig returns a sensor with an instant ray at eye height and
// a suspicion ray below it.
func DefaultVisionConfig() VisionConfig {
	return VisionConfig{
		EyeOffset:       &game.Vec2{X: 0.3, Y: 0.6},
		SuspicionOffset: &game.Vec2{X: 0.3, Y: -0.2},
		ViewDistance:    DefaultViewDistance,
		TimeToCatch:     DefaultTimeToCatch,
		Mask:            game.LayerPlayer,
	}
}

// UnmarshalJSON decodes a level vision block over DefaultVisionConfig, so
// omitted fields keep their defaults. An explicit null offset disables that
// ray.
func (c *VisionConfig) UnmarshalJSON(data []byte) error {
	type plain VisionConfig
	cfg := plain(DefaultVisionConfig())
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	*c = VisionConfig(cfg)
	return nil
}

// VisionResult is the outcome of one sensor frame.
type VisionResult struct {
	InstantHit   bool
	SuspicionHit bool
	Caught       CatchKind
	Suspicion    float64 // accumulated seconds of suspicion contact
}

// VisionSensor casts an instant-catch ray and a suspicion ray each frame and
// freezes the guard's patrol while either ray has contact.
type VisionSensor struct {
	guard  string
	cfg    VisionConfig
	pose   Pose
	gate   Gate
	caster game.Raycaster

	suspicionTimer float64

	// OnCaught is called once per frame in which a ray reaches its catch
	// condition.
	OnCaught func(CaughtEvent)
}

// NewVisionSensor mounts a sensor on pose, writing its verdict to gate.
func NewVisionSensor(guard string, cfg VisionConfig, pose Pose, gate Gate, caster game.Raycaster) *VisionSensor {
	if cfg.Mask == game.LayerNone {
		cfg.Mask = game.LayerPlayer
	}
	if cfg.ViewDistance <= 0 {
		slog.Warn("vision: view distance not positive, using default",
			"guard", guard, "view_distance", cfg.ViewDistance)
		cfg.ViewDistance = DefaultViewDistance
	}
	// A zero threshold would make the suspicion ray catch on first contact.
	if cfg.TimeToCatch <= 0 {
		slog.Warn("vision: time to catch not positive, using default",
			"guard", guard, "time_to_catch", cfg.TimeToCatch)
		cfg.TimeToCatch = DefaultTimeToCatch
	}
	return &VisionSensor{
		guard:  guard,
		cfg:    cfg,
		pose:   pose,
		gate:   gate,
		caster: caster,
	}
}

// Suspicion returns the accumulated suspicion contact time.
func (v *VisionSensor) Suspicion() float64 { return v.suspicionTimer }

// Update runs both rays for one frame.
func (v *VisionSensor) Update(dt float64) VisionResult {
	instantBody, instant := v.cast(v.cfg.EyeOffset)
	suspicionBody, suspicion, suspicionCaught := v.timedCast(dt)

	if v.gate != nil {
		v.gate.SetCanMove(!(instant || suspicion))
	}

	res := VisionResult{
		InstantHit:   instant,
		SuspicionHit: suspicion,
		Suspicion:    v.suspicionTimer,
	}

	switch {
	case instant:
		res.Caught = CatchInstant
		v.report(CatchInstant, instantBody)
	case suspicionCaught:
		res.Caught = CatchSuspicion
		v.report(CatchSuspicion, suspicionBody)
	}

	return res
}

func (v *VisionSensor) timedCast(dt float64) (game.Body, bool, bool) {
	body, hit := v.cast(v.cfg.SuspicionOffset)
	if !hit {
		v.suspicionTimer = 0
		return nil, false, false
	}

	v.suspicionTimer += dt
	return body, true, v.suspicionTimer+catchTolerance >= v.cfg.TimeToCatch
}

// cast fires one ray from the guard at offset. Missing references read as no
// hit.
func (v *VisionSensor) cast(offset *game.Vec2) (game.Body, bool) {
	if offset == nil || v.pose == nil || v.caster == nil {
		return nil, false
	}

	facing := v.pose.Facing()
	if facing == 0 {
		facing = 1
	}
	origin := v.pose.Position().Add(game.Vec2{X: offset.X * facing, Y: offset.Y})
	dir := game.Vec2{X: facing}

	hit, ok := v.caster.Raycast(origin, dir, v.cfg.ViewDistance, v.cfg.Mask)
	if !ok {
		return nil, false
	}

	// Layer classification may lag behind the reason sets; trust the flag.
	if d, ok := hit.Body.(interface{ Detectable() bool }); ok && !d.Detectable() {
		return nil, false
	}
	return hit.Body, true
}

func (v *VisionSensor) report(kind CatchKind, body game.Body) {
	slog.Info("player caught", "guard", v.guard, "kind", kind.String())
	if v.OnCaught != nil {
		v.OnCaught(CaughtEvent{Guard: v.guard, Kind: kind, Body: body})
	}
}
