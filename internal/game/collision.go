package game

import "math"

// Vec2 is a 2D point or direction in world units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rect is an axis-aligned box described by its center and half extents.
type Rect struct {
	Center  Vec2 `json:"center"`
	Extents Vec2 `json:"extents"`
}

// NewRect builds a Rect from a center and full width/height.
func NewRect(center Vec2, width, height float64) Rect {
	return Rect{Center: center, Extents: Vec2{X: width / 2, Y: height / 2}}
}

func (r Rect) Min() Vec2 { return r.Center.Sub(r.Extents) }

func (r Rect) Max() Vec2 { return r.Center.Add(r.Extents) }

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// MoveTowardsVec moves current toward target by at most maxDelta along the
// straight line between them.
func MoveTowardsVec(current, target Vec2, maxDelta float64) Vec2 {
	d := target.Sub(current)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.Scale(maxDelta / dist))
}

// CircleOverlapsRect checks if a circle touches an axis-aligned box.
func CircleOverlapsRect(center Vec2, radius float64, r Rect) bool {
	lo, hi := r.Min(), r.Max()
	nx := math.Max(lo.X, math.Min(center.X, hi.X))
	ny := math.Max(lo.Y, math.Min(center.Y, hi.Y))
	return Distance(center, Vec2{X: nx, Y: ny}) <= radius
}

// RayIntersectsRect casts a ray of the given length from origin along dir
// and returns the distance to the first intersection with r.
// dir does not need to be normalized; a zero dir never hits.
func RayIntersectsRect(origin, dir Vec2, length float64, r Rect) (float64, bool) {
	l := dir.Len()
	if l < 1e-12 || length <= 0 {
		return 0, false
	}
	d := dir.Scale(1 / l)
	lo, hi := r.Min(), r.Max()

	tMin := 0.0
	tMax := length

	// X slab
	if math.Abs(d.X) < 1e-12 {
		if origin.X < lo.X || origin.X > hi.X {
			return 0, false
		}
	} else {
		inv := 1.0 / d.X
		t1 := (lo.X - origin.X) * inv
		t2 := (hi.X - origin.X) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Y slab
	if math.Abs(d.Y) < 1e-12 {
		if origin.Y < lo.Y || origin.Y > hi.Y {
			return 0, false
		}
	} else {
		inv := 1.0 / d.Y
		t1 := (lo.Y - origin.Y) * inv
		t2 := (hi.Y - origin.Y) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}

// sign returns -1, 0 or 1 depending on v, treating |v| <= eps as zero.
func sign(v, eps float64) float64 {
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	default:
		return 0
	}
}
