package minigame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devterrific/raucher/internal/game"
)

func filterAt(x float64) game.Rect {
	return game.NewRect(game.Vec2{X: x}, FilterWidth, FilterHeight)
}

func TestOverlap(t *testing.T) {
	zone := game.NewRect(game.Vec2{}, 40, 60)

	assert.InDelta(t, 1.0, Overlap(filterAt(0), zone), 1e-9)
	assert.InDelta(t, 0.5, Overlap(filterAt(20), zone), 1e-9)
	assert.Equal(t, 0.0, Overlap(filterAt(40), zone), "touching edges do not overlap")
	assert.Equal(t, 0.0, Overlap(game.Rect{}, zone), "degenerate filter")
}

func TestEvaluate(t *testing.T) {
	s := DefaultDifficulty()
	zones := DefaultZones()

	tests := []struct {
		name       string
		x          float64
		wantGrade  Grade
		wantPoints int
		wantMax    bool
	}{
		{"dead center", 0, GradePerfect, 30, true},
		{"inside good", 30, GradeGood, 20, true},
		{"inside okay", 90, GradeOkay, 10, true},
		{"half out of okay", 120, GradeOkay, 5, false},
		{"miss", 300, GradeFail, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(filterAt(tt.x), zones, s)
			assert.Equal(t, tt.wantGrade, res.Grade)
			assert.Equal(t, tt.wantPoints, res.Points)
			assert.Equal(t, tt.wantMax, res.MaxHit)
		})
	}
}

func TestAimer_PingPong(t *testing.T) {
	s := DefaultDifficulty()
	a := NewAimer(s)
	require.Equal(t, 400.0, a.Position().X, "starts at the right edge")
	assert.Equal(t, -1.0, a.Direction())

	// 1.6s at 500 px/s crosses the 800 px range.
	for i := 0; i < 16; i++ {
		assert.False(t, a.Update(0.1))
	}
	assert.Equal(t, -400.0, a.Position().X)
	assert.Equal(t, 1.0, a.Direction(), "bounces at the left edge")
	assert.False(t, a.Missed())
}

func TestAimer_SinglePassMiss(t *testing.T) {
	s := DefaultDifficulty()
	s.LoopMovement = false
	s.RightToLeft = false
	a := NewAimer(s)
	require.Equal(t, -400.0, a.Position().X)

	missed := false
	for i := 0; i < 20 && !missed; i++ {
		missed = a.Update(0.1)
	}
	assert.True(t, missed)
	assert.True(t, a.Missed())

	x := a.Position().X
	a.Update(0.1)
	assert.Equal(t, x, a.Position().X, "stops after the miss")
}

func TestAimer_DropOnce(t *testing.T) {
	a := NewAimer(DefaultDifficulty())

	assert.True(t, a.Drop())
	assert.False(t, a.Drop())
	start := a.Position()

	for i := 0; i < 10; i++ {
		a.Update(0.05)
	}
	assert.False(t, a.Dropping())
	assert.InDelta(t, start.Y-DropDistance, a.Position().Y, 1e-9)
	assert.Equal(t, start.X, a.Position().X)
}

func TestAimer_DropToVoidCancelsDrop(t *testing.T) {
	a := NewAimer(DefaultDifficulty())
	a.Drop()
	a.Update(0.1)
	mid := a.Position()
	require.True(t, a.Dropping())

	a.DropToVoid()
	for i := 0; i < 20; i++ {
		a.Update(0.05)
	}
	assert.False(t, a.Dropping())
	assert.InDelta(t, mid.Y-VoidDropDistance, a.Position().Y, 1e-9, "void fall starts where the old tween was cut")
}

func TestRound_Flow(t *testing.T) {
	s := DefaultDifficulty()
	s.FilterSpeed = 0 // filter parks at its start edge
	zones := DefaultZones()
	zones.Perfect = game.NewRect(game.Vec2{X: 400}, 40, 60)

	r := NewRound(s, zones)
	assert.Equal(t, PhaseCountdown, r.Phase())
	assert.InDelta(t, 3.0, r.Countdown(), 1e-9)

	_, ok := r.Drop()
	assert.False(t, ok, "no drop during countdown")

	for i := 0; i < 35; i++ {
		r.Update(0.1)
	}
	require.Equal(t, PhaseAiming, r.Phase())

	res, ok := r.Drop()
	require.True(t, ok)
	assert.Equal(t, GradePerfect, res.Grade)
	assert.Equal(t, 30, res.Points)
	assert.Equal(t, PhaseAssemble, r.Phase())

	_, ok = r.Drop()
	assert.False(t, ok, "second drop ignored")

	for i := 0; i < 10; i++ {
		r.Update(0.1)
	}
	assert.Equal(t, PhaseResults, r.Phase())
	got, scored := r.Result()
	assert.True(t, scored)
	assert.Equal(t, res, got)
}

func TestRound_FailDropsToVoid(t *testing.T) {
	s := DefaultDifficulty()
	s.FilterSpeed = 0
	s.CountdownSeconds = 0

	r := NewRound(s, DefaultZones())
	r.Update(0.1)
	require.Equal(t, PhaseAiming, r.Phase())

	res, ok := r.Drop()
	require.True(t, ok)
	assert.Equal(t, GradeFail, res.Grade)
	assert.Equal(t, PhaseFailing, r.Phase())

	for i := 0; i < 10; i++ {
		r.Update(0.1)
	}
	assert.Equal(t, PhaseResults, r.Phase())
	assert.InDelta(t, -VoidDropDistance, r.Aimer().Position().Y, 1e-9)
}

func TestRound_SweepMiss(t *testing.T) {
	s := DefaultDifficulty()
	s.LoopMovement = false
	s.CountdownSeconds = 0

	r := NewRound(s, DefaultZones())
	var got *Result
	for i := 0; i < 30 && got == nil; i++ {
		got = r.Update(0.1)
	}
	require.NotNil(t, got)
	assert.Equal(t, GradeFail, got.Grade)
	assert.Equal(t, PhaseResults, r.Phase())
}
