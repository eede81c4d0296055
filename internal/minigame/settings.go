// Package minigame implements the cigarette-rolling timing game: a filter
// sweeps across the paper and is dropped onto scored target zones.
package minigame

import "github.com/devterrific/raucher/internal/game"

// DifficultySettings tunes the filter sweep, scoring and timings.
type DifficultySettings struct {
	FilterSpeed   float64 `json:"filter_speed"` // px per second
	LoopMovement  bool    `json:"loop_movement"`
	RightToLeft   bool    `json:"right_to_left"`
	MovementRange float64 `json:"movement_range"`

	PointsPerfect int `json:"points_perfect"`
	PointsGood    int `json:"points_good"`
	PointsOkay    int `json:"points_okay"`
	PointsMiss    int `json:"points_miss"`

	CountdownSeconds float64 `json:"countdown_seconds"`
	AssembleSeconds  float64 `json:"assemble_seconds"`
}

// DefaultDifficulty returns the stock settings.
func DefaultDifficulty() DifficultySettings {
	return DifficultySettings{
		FilterSpeed:      500,
		LoopMovement:     true,
		RightToLeft:      true,
		MovementRange:    800,
		PointsPerfect:    30,
		PointsGood:       20,
		PointsOkay:       10,
		PointsMiss:       0,
		CountdownSeconds: 3,
		AssembleSeconds:  0.6,
	}
}

// Zones are the three nested target areas, in the filter's coordinate space.
type Zones struct {
	Perfect game.Rect `json:"perfect"`
	Good    game.Rect `json:"good"`
	Okay    game.Rect `json:"okay"`
}

// DefaultZones centers the target areas on the paper.
func DefaultZones() Zones {
	return Zones{
		Perfect: game.NewRect(game.Vec2{}, 40, 60),
		Good:    game.NewRect(game.Vec2{}, 120, 60),
		Okay:    game.NewRect(game.Vec2{}, 240, 60),
	}
}

// Filter size in the same space.
const (
	FilterWidth  = 40.0
	FilterHeight = 60.0
)

// Drop tween parameters.
const (
	DropDistance     = 195.0
	DropTime         = 0.25
	VoidDropDistance = 900.0
	VoidDropTime     = 0.35
)
