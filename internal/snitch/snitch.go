// Package snitch implements the patrolling guard: a waypoint patrol gated by
// a two-ray vision sensor.
package snitch

import (
	"github.com/devterrific/raucher/internal/game"
	"github.com/google/uuid"
)

// Guard half extents.
const (
	HalfWidth  = 0.4
	HalfHeight = 0.9
)

// Config describes one guard.
type Config struct {
	Start  game.Vec2    `json:"start"`
	Patrol PatrolConfig `json:"patrol"`
	Vision VisionConfig `json:"vision"`
}

// Snitch is a guard: patrol plus vision.
type Snitch struct {
	ID     string
	Patrol *PatrolController
	Vision *VisionSensor

	last VisionResult
}

// New creates a guard whose sensor queries caster.
func New(cfg Config, caster game.Raycaster, onCaught func(CaughtEvent)) *Snitch {
	id := uuid.New().String()
	patrol := NewPatrolController(cfg.Start, cfg.Patrol)
	vision := NewVisionSensor(id, cfg.Vision, patrol, patrol, caster)
	vision.OnCaught = onCaught
	return &Snitch{ID: id, Patrol: patrol, Vision: vision}
}

// Update looks first, then walks, so a sighting freezes the guard in the
// same frame.
func (s *Snitch) Update(dt float64) VisionResult {
	s.last = s.Vision.Update(dt)
	s.Patrol.Update(dt)
	return s.last
}

// LastResult returns the vision result of the most recent Update.
func (s *Snitch) LastResult() VisionResult { return s.last }

// Bounds implements game.Body.
func (s *Snitch) Bounds() game.Rect {
	return game.Rect{Center: s.Patrol.Position(), Extents: game.Vec2{X: HalfWidth, Y: HalfHeight}}
}

// Layer implements game.Body.
func (s *Snitch) Layer() game.Layer { return game.LayerGuard }
