package minigame

import (
	"encoding/json"
	"math"

	"github.com/devterrific/raucher/internal/game"
)

// maxHitOverlap is the overlap fraction that counts as fully inside a zone.
const maxHitOverlap = 0.9999

// Grade names the zone a drop landed in.
type Grade int

const (
	GradeFail Grade = iota
	GradeOkay
	GradeGood
	GradePerfect
)

func (g Grade) String() string {
	switch g {
	case GradePerfect:
		return "perfect"
	case GradeGood:
		return "good"
	case GradeOkay:
		return "okay"
	default:
		return "fail"
	}
}

// MarshalJSON serializes Grade as a string.
func (g Grade) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// Result is the score of one filter drop.
type Result struct {
	Grade   Grade   `json:"grade"`
	Points  int     `json:"points"`
	Overlap float64 `json:"overlap"`
	// MaxHit is true when the filter sat fully inside its zone.
	MaxHit bool `json:"max_hit"`
}

// Overlap returns the fraction of a's area covered by b, in [0, 1].
func Overlap(a, b game.Rect) float64 {
	alo, ahi := a.Min(), a.Max()
	blo, bhi := b.Min(), b.Max()

	w := math.Min(ahi.X, bhi.X) - math.Max(alo.X, blo.X)
	h := math.Min(ahi.Y, bhi.Y) - math.Max(alo.Y, blo.Y)
	if w <= 0 || h <= 0 {
		return 0
	}

	area := (ahi.X - alo.X) * (ahi.Y - alo.Y)
	if area <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, w*h/area))
}

// Evaluate scores a dropped filter. The zone with the highest overlap wins,
// ties going to the better zone; points scale with overlap unless the filter
// is fully inside.
func Evaluate(filter game.Rect, zones Zones, s DifficultySettings) Result {
	best := Overlap(filter, zones.Perfect)
	base := s.PointsPerfect
	grade := GradePerfect

	if o := Overlap(filter, zones.Good); o > best {
		best, base, grade = o, s.PointsGood, GradeGood
	}
	if o := Overlap(filter, zones.Okay); o > best {
		best, base, grade = o, s.PointsOkay, GradeOkay
	}

	if best <= 0 {
		return Result{Grade: GradeFail, Points: s.PointsMiss}
	}

	res := Result{Grade: grade, Overlap: best}
	if best >= maxHitOverlap {
		res.MaxHit = true
		res.Points = base
		return res
	}

	res.Points = int(math.RoundToEven(float64(base) * best))
	if res.Points < 0 {
		res.Points = 0
	}
	return res
}
