package game

// Body is anything the world can find with an overlap or ray query.
type Body interface {
	Bounds() Rect
	Layer() Layer
}

// Interactable is a body the player can use with the interact key.
// Implementations must tolerate a nil player and report false / do nothing.
type Interactable interface {
	Body
	CanInteract(p *Player) bool
	Interact(p *Player)
}

// Overlapper answers shape queries. The player's interaction scan needs
// nothing more from the world.
type Overlapper interface {
	OverlapCircle(center Vec2, radius float64, mask Layer) []Body
}

// Raycaster answers ray queries.
type Raycaster interface {
	Raycast(origin, dir Vec2, length float64, mask Layer) (RaycastHit, bool)
}

// RaycastHit describes the nearest body struck by a ray.
type RaycastHit struct {
	Body     Body
	Distance float64
	Point    Vec2
}

// World is the scene's body registry. Queries evaluate each body's current
// Layer(), so reclassifying an actor takes effect immediately.
type World struct {
	bodies []Body
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Add registers a body. Adding the same body twice is a no-op.
func (w *World) Add(b Body) {
	if b == nil {
		return
	}
	for _, existing := range w.bodies {
		if existing == b {
			return
		}
	}
	w.bodies = append(w.bodies, b)
}

// Remove unregisters a body.
func (w *World) Remove(b Body) {
	for i, existing := range w.bodies {
		if existing == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns the registered bodies in registration order.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// OverlapCircle returns bodies on a layer in mask whose bounds touch the
// circle, in registration order.
func (w *World) OverlapCircle(center Vec2, radius float64, mask Layer) []Body {
	var hits []Body
	for _, b := range w.bodies {
		if !b.Layer().In(mask) {
			continue
		}
		if CircleOverlapsRect(center, radius, b.Bounds()) {
			hits = append(hits, b)
		}
	}
	return hits
}

// Raycast returns the nearest body on a layer in mask struck by the ray.
func (w *World) Raycast(origin, dir Vec2, length float64, mask Layer) (RaycastHit, bool) {
	var best RaycastHit
	found := false
	for _, b := range w.bodies {
		if !b.Layer().In(mask) {
			continue
		}
		dist, ok := RayIntersectsRect(origin, dir, length, b.Bounds())
		if !ok {
			continue
		}
		if !found || dist < best.Distance {
			best = RaycastHit{Body: b, Distance: dist}
			found = true
		}
	}
	if found {
		n := dir.Scale(1 / dir.Len())
		best.Point = origin.Add(n.Scale(best.Distance))
	}
	return best, found
}
