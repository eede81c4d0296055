package minigame

import (
	"math"

	"github.com/devterrific/raucher/internal/game"
)

// tween moves a point linearly from start to end over duration seconds.
type tween struct {
	start, end game.Vec2
	duration   float64
	elapsed    float64
}

func (t *tween) step(dt float64) (game.Vec2, bool) {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.end, true
	}
	f := t.elapsed / t.duration
	return t.start.Add(t.end.Sub(t.start).Scale(f)), false
}

// Aimer sweeps the filter horizontally across [-range/2, range/2] until it is
// dropped. Without looping, reaching the far edge is a miss.
type Aimer struct {
	pos    game.Vec2
	size   game.Vec2
	speed  float64
	leftX  float64
	rightX float64
	dir    float64
	loop   bool

	moving  bool
	dropped bool
	missed  bool

	drop *tween
}

// NewAimer places the filter at its starting edge.
func NewAimer(s DifficultySettings) *Aimer {
	half := s.MovementRange * 0.5
	a := &Aimer{
		size:   game.Vec2{X: FilterWidth, Y: FilterHeight},
		speed:  s.FilterSpeed,
		leftX:  -half,
		rightX: half,
		dir:    1,
		loop:   s.LoopMovement,
		moving: true,
	}
	a.pos.X = a.leftX
	if s.RightToLeft {
		a.dir = -1
		a.pos.X = a.rightX
	}
	return a
}

// Update advances the sweep or the running drop tween. It reports true on
// the frame a single-pass sweep runs out.
func (a *Aimer) Update(dt float64) bool {
	if a.drop != nil {
		pos, done := a.drop.step(dt)
		a.pos = pos
		if done {
			a.drop = nil
		}
		return false
	}

	if !a.moving || a.dropped {
		return false
	}

	a.pos.X += a.dir * a.speed * dt

	edge := false
	switch {
	case a.pos.X <= a.leftX:
		a.pos.X = a.leftX
		a.dir = 1
		edge = true
	case a.pos.X >= a.rightX:
		a.pos.X = a.rightX
		a.dir = -1
		edge = true
	}

	if edge && !a.loop {
		a.moving = false
		a.missed = true
		return true
	}
	return false
}

// Drop stops the sweep and settles the filter onto the paper. Only the
// first drop counts.
func (a *Aimer) Drop() bool {
	if a.dropped {
		return false
	}
	a.dropped = true
	a.moving = false
	a.startDrop(DropDistance, DropTime)
	return true
}

// DropToVoid lets the filter fall away. It always replaces whatever drop is
// in flight so two tweens never drive the filter at once.
func (a *Aimer) DropToVoid() {
	a.dropped = true
	a.moving = false
	a.startDrop(VoidDropDistance, VoidDropTime)
}

func (a *Aimer) startDrop(distance, duration float64) {
	a.drop = &tween{
		start:    a.pos,
		end:      a.pos.Add(game.Vec2{Y: -distance}),
		duration: duration,
	}
}

// Rect returns the filter's current box.
func (a *Aimer) Rect() game.Rect {
	return game.Rect{Center: a.pos, Extents: a.size.Scale(0.5)}
}

func (a *Aimer) Position() game.Vec2 { return a.pos }

func (a *Aimer) Dropped() bool { return a.dropped }

func (a *Aimer) Missed() bool { return a.missed }

// Dropping reports whether a drop tween is still running.
func (a *Aimer) Dropping() bool { return a.drop != nil }

// Direction is -1 while moving left and +1 while moving right.
func (a *Aimer) Direction() float64 { return math.Copysign(1, a.dir) }
