package snitch

import (
	"log/slog"
	"math"

	"github.com/devterrific/raucher/internal/game"
)

// ReachEpsilon is how close a guard must get to a waypoint to count as
// having reached it.
const ReachEpsilon = 0.01

// PatrolConfig holds the tunables of a patrol route.
type PatrolConfig struct {
	Waypoints []game.Vec2 `json:"waypoints"`
	Speed     float64     `json:"speed"`
	Pause     float64     `json:"pause"` // seconds at each waypoint
}

// PatrolController walks a guard along a closed loop of waypoints, pausing at
// each. The vision sensor gates it through SetCanMove.
type PatrolController struct {
	waypoints []game.Vec2
	speed     float64
	pause     float64

	position game.Vec2
	facing   float64

	target         int
	waiting        bool
	pauseRemaining float64
	canMove        bool

	warnedEmpty bool
}

// NewPatrolController creates a controller starting at start and heading to
// the first waypoint.
func NewPatrolController(start game.Vec2, cfg PatrolConfig) *PatrolController {
	wp := make([]game.Vec2, len(cfg.Waypoints))
	copy(wp, cfg.Waypoints)
	return &PatrolController{
		waypoints: wp,
		speed:     cfg.Speed,
		pause:     cfg.Pause,
		position:  start,
		facing:    1,
		canMove:   true,
	}
}

func (c *PatrolController) Position() game.Vec2 { return c.position }

// Facing is +1 when the guard looks right and -1 when it looks left.
func (c *PatrolController) Facing() float64 { return c.facing }

// Target returns the cursor into the waypoint list.
func (c *PatrolController) Target() int { return c.target }

func (c *PatrolController) IsWaiting() bool { return c.waiting }

// PauseRemaining returns the seconds left at the current waypoint.
func (c *PatrolController) PauseRemaining() float64 { return c.pauseRemaining }

func (c *PatrolController) CanMove() bool { return c.canMove }

// SetCanMove gates the whole state machine. Freezing keeps cursor and pause
// timer untouched.
func (c *PatrolController) SetCanMove(v bool) { c.canMove = v }

// Update advances the patrol by dt seconds.
func (c *PatrolController) Update(dt float64) {
	if len(c.waypoints) == 0 {
		if !c.warnedEmpty {
			slog.Warn("patrol has no waypoints")
			c.warnedEmpty = true
		}
		return
	}
	if !c.canMove {
		return
	}

	if c.waiting {
		c.pauseRemaining -= dt
		if c.pauseRemaining <= 0 {
			c.waiting = false
			c.pauseRemaining = 0
			c.advance()
		}
		return
	}

	target := c.waypoints[c.target]
	if dx := target.X - c.position.X; math.Abs(dx) > 1e-9 {
		c.facing = math.Copysign(1, dx)
	}

	c.position = game.MoveTowardsVec(c.position, target, c.speed*dt)

	if game.Distance(c.position, target) < ReachEpsilon {
		c.waiting = true
		c.pauseRemaining = c.pause
		slog.Debug("guard reached waypoint", "waypoint", c.target)
	}
}

func (c *PatrolController) advance() {
	c.target++
	if c.target >= len(c.waypoints) {
		c.target = 0
	}
}
