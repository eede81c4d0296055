package game

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
)

// MovementConfig holds the tunables for walking, sprinting, sneaking,
// stamina and interaction.
type MovementConfig struct {
	WalkSpeed   float64 `json:"walk_speed"`
	SprintSpeed float64 `json:"sprint_speed"`
	SneakSpeed  float64 `json:"sneak_speed"`
	Accel       float64 `json:"accel"`
	Decel       float64 `json:"decel"`

	MaxStamina         float64 `json:"max_stamina"`
	DrainPerSec        float64 `json:"drain_per_sec"`
	RegenPerSec        float64 `json:"regen_per_sec"`
	MinSprintThreshold float64 `json:"min_sprint_threshold"`
	RegenDelay         float64 `json:"regen_delay"`

	InteractRange float64 `json:"interact_range"`
	InteractLayer Layer   `json:"-"`
}

// DefaultMovementConfig returns the stock player tuning.
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		WalkSpeed:          WalkSpeed,
		SprintSpeed:        SprintSpeed,
		SneakSpeed:         SneakSpeed,
		Accel:              Accel,
		Decel:              Decel,
		MaxStamina:         MaxStamina,
		DrainPerSec:        DrainPerSec,
		RegenPerSec:        RegenPerSec,
		MinSprintThreshold: MinSprintThreshold,
		RegenDelay:         RegenDelay,
		InteractRange:      InteractRange,
		InteractLayer:      LayerInteractable,
	}
}

// Input is one frame of sampled player input. Interact is edge-triggered:
// true only on the frame the key went down.
type Input struct {
	Horizontal float64 `json:"x"`
	Sprint     bool    `json:"sprint"`
	Sneak      bool    `json:"sneak"`
	Interact   bool    `json:"interact"`
}

// Player is the stealth actor controlled by the user.
type Player struct {
	ID       string
	Position Vec2
	Velocity Vec2
	Facing   float64 // +1 right, -1 left
	Sprite   string

	cfg        MovementConfig
	halfExtent Vec2
	world      Overlapper

	visibility VisibilityState
	layer      Layer

	xInput        float64
	stamina       float64
	regenCooldown float64
	targetSpeed   float64

	sneaking    bool
	sneakReason Reason

	spriteBeforeHide string
}

// NewPlayer creates a player at pos using cfg.
func NewPlayer(pos Vec2, cfg MovementConfig) *Player {
	p := &Player{
		ID:          uuid.New().String(),
		Position:    pos,
		Facing:      1,
		Sprite:      SpriteStand,
		cfg:         cfg,
		halfExtent:  Vec2{X: PlayerHalfWidth, Y: PlayerHalfHeight},
		stamina:     cfg.MaxStamina,
		targetSpeed: cfg.WalkSpeed,
		sneakReason: NewReason(),
	}
	p.applyDetectableLayer()
	return p
}

// SetWorld attaches the query surface used by the interaction scan.
func (p *Player) SetWorld(w Overlapper) {
	p.world = w
}

// Bounds implements Body.
func (p *Player) Bounds() Rect {
	return Rect{Center: p.Position, Extents: p.halfExtent}
}

// Layer implements Body. It is LayerPlayer while detectable and
// LayerHidden otherwise.
func (p *Player) Layer() Layer {
	return p.layer
}

// CanMove is true iff no movement lock is active.
func (p *Player) CanMove() bool {
	return p.visibility.CanMove()
}

// Detectable is true iff no hidden reason is active.
func (p *Player) Detectable() bool {
	return p.visibility.Detectable()
}

func (p *Player) Stamina() float64     { return p.stamina }
func (p *Player) TargetSpeed() float64 { return p.targetSpeed }
func (p *Player) IsSneaking() bool     { return p.sneaking }

// AddMovementLock freezes movement on behalf of r. A new lock zeroes any
// residual velocity right away.
func (p *Player) AddMovementLock(r Reason) {
	if p.visibility.AddMovementLock(r) {
		p.Velocity = Vec2{}
	}
}

// RemoveMovementLock releases the lock held by r.
func (p *Player) RemoveMovementLock(r Reason) {
	p.visibility.RemoveMovementLock(r)
}

// SetHidden turns the hidden reason r on or off.
func (p *Player) SetHidden(r Reason, hidden bool) {
	if p.visibility.SetHidden(r, hidden) {
		p.applyDetectableLayer()
	}
}

// IsHiddenBy reports whether r currently hides the player.
func (p *Player) IsHiddenBy(r Reason) bool {
	return p.visibility.IsHiddenBy(r)
}

// EnterHidezone hides and locks the player for r and swaps to sprite.
func (p *Player) EnterHidezone(r Reason, sprite string) {
	if !r.Valid() {
		return
	}

	p.spriteBeforeHide = p.Sprite

	p.AddMovementLock(r)
	p.SetHidden(r, true)

	if sprite != "" {
		p.Sprite = sprite
	}
}

// ExitHidezone undoes EnterHidezone in reverse order.
func (p *Player) ExitHidezone(r Reason) {
	if !r.Valid() {
		return
	}

	if p.spriteBeforeHide != "" {
		p.Sprite = p.spriteBeforeHide
	}

	p.SetHidden(r, false)
	p.RemoveMovementLock(r)
}

// Update runs the per-frame pass: interaction scan, sneak, sprint and
// stamina, facing.
func (p *Player) Update(dt float64, in Input) {
	if in.Interact {
		p.interact()
	}

	p.xInput = in.Horizontal

	if p.CanMove() {
		p.handleSneak(in.Sneak)
		p.handleSprintAndStamina(in.Sprint, dt)
	} else {
		p.releaseSneak()
		p.xInput = 0
		p.targetSpeed = p.cfg.WalkSpeed
	}

	p.handleFacing()
}

// FixedUpdate integrates velocity and position for one physics step.
func (p *Player) FixedUpdate(dt float64) {
	if !p.CanMove() {
		p.Velocity = Vec2{}
		return
	}

	targetVelX := p.xInput * p.targetSpeed
	velX := p.Velocity.X

	rate := p.cfg.Decel
	if math.Abs(targetVelX) > math.Abs(velX) {
		rate = p.cfg.Accel
	}

	p.Velocity = Vec2{X: MoveTowards(velX, targetVelX, rate*dt)}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// Teleport moves the player without disturbing its reasons, e.g. onto a
// spawn point after a scene change.
func (p *Player) Teleport(pos Vec2) {
	p.Position = pos
	p.Velocity = Vec2{}
}

func (p *Player) handleSneak(wantsSneak bool) {
	if wantsSneak && !p.sneaking {
		p.sneaking = true
		p.SetHidden(p.sneakReason, true)
	} else if !wantsSneak && p.sneaking {
		p.releaseSneak()
	}

	if p.sneaking {
		p.targetSpeed = p.cfg.SneakSpeed
	}
}

func (p *Player) releaseSneak() {
	if !p.sneaking {
		return
	}
	p.sneaking = false
	p.SetHidden(p.sneakReason, false)
}

func (p *Player) handleSprintAndStamina(sprint bool, dt float64) {
	if p.sneaking {
		return
	}

	wantsSprint := sprint && math.Abs(p.xInput) > AxisDeadZone
	canSprint := p.stamina > p.cfg.MinSprintThreshold

	if wantsSprint && canSprint {
		p.targetSpeed = p.cfg.SprintSpeed
		p.stamina = math.Max(0, p.stamina-p.cfg.DrainPerSec*dt)
		p.regenCooldown = p.cfg.RegenDelay
		return
	}

	p.targetSpeed = p.cfg.WalkSpeed

	if p.regenCooldown > 0 {
		p.regenCooldown -= dt
	} else {
		p.stamina = math.Min(p.cfg.MaxStamina, p.stamina+p.cfg.RegenPerSec*dt)
	}
}

func (p *Player) handleFacing() {
	if s := sign(p.xInput, AxisDeadZone); s != 0 {
		p.Facing = s
	}
}

// interact invokes the first interactable in range that accepts the player.
func (p *Player) interact() {
	if p.world == nil {
		return
	}

	hits := p.world.OverlapCircle(p.Position, p.cfg.InteractRange, p.cfg.InteractLayer)
	for _, h := range hits {
		it, ok := h.(Interactable)
		if !ok || !it.CanInteract(p) {
			continue
		}
		slog.Debug("player interacted", "player", p.ID, "layer", h.Layer().String())
		it.Interact(p)
		return
	}
}

func (p *Player) applyDetectableLayer() {
	if p.Detectable() {
		p.layer = LayerPlayer
	} else {
		p.layer = LayerHidden
	}
}
