package snitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devterrific/raucher/internal/game"
)

const dt = 0.1

var (
	pointA = game.Vec2{X: 0}
	pointB = game.Vec2{X: 2}
	pointC = game.Vec2{X: 2, Y: 2}
)

func newLoop(pause float64) *PatrolController {
	return NewPatrolController(game.Vec2{X: -1}, PatrolConfig{
		Waypoints: []game.Vec2{pointA, pointB, pointC},
		Speed:     2,
		Pause:     pause,
	})
}

// runUntil ticks c until cond holds or maxTicks elapse.
func runUntil(c *PatrolController, cond func() bool, maxTicks int) bool {
	for i := 0; i < maxTicks; i++ {
		if cond() {
			return true
		}
		c.Update(dt)
	}
	return cond()
}

func TestPatrol_LoopClosure(t *testing.T) {
	c := newLoop(0.5)
	require.Equal(t, 0, c.Target())

	for _, want := range []int{1, 2, 0} {
		require.True(t, runUntil(c, c.IsWaiting, 100), "guard should reach waypoint")
		require.True(t, runUntil(c, func() bool { return !c.IsWaiting() }, 100))
		assert.Equal(t, want, c.Target())
	}
}

func TestPatrol_LoopNeverIndexesOut(t *testing.T) {
	c := newLoop(0)
	for i := 0; i < 2000; i++ {
		c.Update(dt)
		assert.GreaterOrEqual(t, c.Target(), 0)
		assert.Less(t, c.Target(), 3)
	}
}

func TestPatrol_PauseBeforeAdvance(t *testing.T) {
	c := newLoop(1.0)
	require.True(t, runUntil(c, c.IsWaiting, 100))
	assert.Equal(t, 0, c.Target(), "cursor does not move until pause ends")
	assert.InDelta(t, 1.0, c.PauseRemaining(), 1e-9)

	c.Update(dt)
	assert.True(t, c.IsWaiting())
	assert.InDelta(t, 0.9, c.PauseRemaining(), 1e-9)
	assert.Equal(t, pointA, c.Position(), "guard stays put while waiting")
}

func TestPatrol_FreezeMidPause(t *testing.T) {
	c := newLoop(1.0)
	require.True(t, runUntil(c, c.IsWaiting, 100))
	c.Update(dt)
	c.Update(dt)
	remaining := c.PauseRemaining()
	target := c.Target()

	c.SetCanMove(false)
	for i := 0; i < 50; i++ {
		c.Update(dt)
	}
	assert.Equal(t, remaining, c.PauseRemaining())
	assert.Equal(t, target, c.Target())
	assert.True(t, c.IsWaiting())

	c.SetCanMove(true)
	require.True(t, runUntil(c, func() bool { return !c.IsWaiting() }, 100))
	assert.Equal(t, target+1, c.Target(), "resumes without skipping")
}

func TestPatrol_FreezeMidMove(t *testing.T) {
	c := newLoop(0.5)
	c.Update(dt)
	pos := c.Position()
	require.False(t, c.IsWaiting())

	c.SetCanMove(false)
	for i := 0; i < 50; i++ {
		c.Update(dt)
	}
	assert.Equal(t, pos, c.Position())
	assert.Equal(t, 0, c.Target())

	c.SetCanMove(true)
	require.True(t, runUntil(c, c.IsWaiting, 100))
	assert.Equal(t, 0, c.Target(), "still heading to the same waypoint")
	assert.Equal(t, pointA, c.Position())
}

func TestPatrol_Facing(t *testing.T) {
	c := NewPatrolController(game.Vec2{X: 5}, PatrolConfig{
		Waypoints: []game.Vec2{{X: 0}, {X: 0, Y: 3}},
		Speed:     1,
	})

	c.Update(dt)
	assert.Equal(t, -1.0, c.Facing())

	require.True(t, runUntil(c, func() bool { return c.Target() == 1 }, 200))
	c.Update(dt)
	assert.Equal(t, -1.0, c.Facing(), "vertical leg keeps facing")
}

func TestPatrol_EmptyWaypointsGuarded(t *testing.T) {
	c := NewPatrolController(game.Vec2{X: 1}, PatrolConfig{Speed: 1})

	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			c.Update(dt)
		}
	})
	assert.Equal(t, game.Vec2{X: 1}, c.Position())
	assert.Equal(t, 0, c.Target())
}

func TestPatrol_CopiesWaypoints(t *testing.T) {
	wp := []game.Vec2{{X: 1}}
	c := NewPatrolController(game.Vec2{}, PatrolConfig{Waypoints: wp, Speed: 100})
	wp[0] = game.Vec2{X: 50}

	c.Update(dt)
	assert.Equal(t, game.Vec2{X: 1}, c.Position())
}
