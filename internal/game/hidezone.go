package game

import (
	"log/slog"
	"math"
)

// HideZone is a world object the player can crouch behind. It owns no hidden
// state of its own: its reason token marks the player as hidden by this zone.
type HideZone struct {
	Box        *Rect
	SideRange  float64
	SideHeight float64
	HideSprite string

	reason Reason
}

// NewHideZone creates a hide zone around box with the default side bands.
func NewHideZone(box Rect, hideSprite string) *HideZone {
	b := box
	return &HideZone{
		Box:        &b,
		SideRange:  HideSideRange,
		SideHeight: HideSideHeight,
		HideSprite: hideSprite,
		reason:     NewReason(),
	}
}

// Reason returns the token this zone uses on players.
func (z *HideZone) Reason() Reason {
	return z.reason
}

// Bounds implements Body.
func (z *HideZone) Bounds() Rect {
	if z.Box == nil {
		return Rect{}
	}
	return *z.Box
}

// Layer implements Body.
func (z *HideZone) Layer() Layer {
	return LayerInteractable
}

// CanInteract is true when p stands in the left or right capture band.
func (z *HideZone) CanInteract(p *Player) bool {
	if p == nil || z.Box == nil {
		return false
	}
	return z.isNextTo(p.Position)
}

// Interact toggles the player in or out of this zone.
func (z *HideZone) Interact(p *Player) {
	if !z.CanInteract(p) {
		return
	}

	if p.IsHiddenBy(z.reason) {
		p.ExitHidezone(z.reason)
		slog.Debug("player left hide zone", "player", p.ID)
		return
	}

	p.EnterHidezone(z.reason, z.HideSprite)
	slog.Debug("player entered hide zone", "player", p.ID)
}

func (z *HideZone) isNextTo(pos Vec2) bool {
	c := z.Box.Center
	ex := z.Box.Extents.X
	inHeight := math.Abs(pos.Y-c.Y) <= z.SideHeight*0.5

	left := pos.X < c.X && math.Abs(pos.X-(c.X-ex)) <= z.SideRange && inHeight
	right := pos.X > c.X && math.Abs(pos.X-(c.X+ex)) <= z.SideRange && inHeight

	return left || right
}
