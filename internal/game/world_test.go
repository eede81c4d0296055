package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLoader struct {
	loaded []string
}

func (l *recordingLoader) LoadScene(name string) { l.loaded = append(l.loaded, name) }

func TestWorld_AddIsIdempotent(t *testing.T) {
	w := NewWorld()
	p := NewPlayer(Vec2{}, DefaultMovementConfig())

	w.Add(p)
	w.Add(p)
	w.Add(nil)
	assert.Len(t, w.Bodies(), 1)

	w.Remove(p)
	assert.Empty(t, w.Bodies())
}

func TestWorld_RaycastRespectsLayer(t *testing.T) {
	w := NewWorld()
	p := NewPlayer(Vec2{X: 3}, DefaultMovementConfig())
	w.Add(p)

	hit, ok := w.Raycast(Vec2{}, Vec2{X: 1}, 5, LayerPlayer)
	require.True(t, ok)
	assert.Same(t, p, hit.Body)
	assert.InDelta(t, 3-PlayerHalfWidth, hit.Distance, 1e-9)
	assert.InDelta(t, 3-PlayerHalfWidth, hit.Point.X, 1e-9)

	p.SetHidden(NewReason(), true)
	_, ok = w.Raycast(Vec2{}, Vec2{X: 1}, 5, LayerPlayer)
	assert.False(t, ok, "hidden player is off the player layer")

	_, ok = w.Raycast(Vec2{}, Vec2{X: 1}, 5, LayerHidden)
	assert.True(t, ok)
}

func TestWorld_RaycastNearestWins(t *testing.T) {
	w := NewWorld()
	far := NewPlayer(Vec2{X: 4}, DefaultMovementConfig())
	near := NewPlayer(Vec2{X: 2}, DefaultMovementConfig())
	w.Add(far)
	w.Add(near)

	hit, ok := w.Raycast(Vec2{}, Vec2{X: 1}, 10, LayerPlayer)
	require.True(t, ok)
	assert.Same(t, near, hit.Body)
}

func TestWorld_OverlapCircleMask(t *testing.T) {
	w := NewWorld()
	loader := &recordingLoader{}
	d := NewDoor(NewRect(Vec2{X: 1}, 1, 2), "Flur", loader)
	p := NewPlayer(Vec2{}, DefaultMovementConfig())
	w.Add(d)
	w.Add(p)

	hits := w.OverlapCircle(Vec2{}, 1.5, LayerInteractable)
	require.Len(t, hits, 1)
	assert.Same(t, d, hits[0])

	hits = w.OverlapCircle(Vec2{}, 1.5, LayerInteractable|LayerPlayer)
	assert.Len(t, hits, 2)
}

func TestDoor_Interact(t *testing.T) {
	loader := &recordingLoader{}
	p := NewPlayer(Vec2{}, DefaultMovementConfig())

	NewDoor(Rect{}, "Flur", loader).Interact(p)
	assert.Equal(t, []string{"Flur"}, loader.loaded)

	NewDoor(Rect{}, "", loader).Interact(p)
	NewDoor(Rect{}, "Buro", loader).Interact(nil)
	assert.Equal(t, []string{"Flur"}, loader.loaded, "no target or no player is a no-op")

	assert.NotPanics(t, func() { NewDoor(Rect{}, "Buro", nil).Interact(p) })
}

func TestLayer_String(t *testing.T) {
	assert.Equal(t, "player", LayerPlayer.String())
	assert.Equal(t, "hidden", LayerHidden.String())
	assert.Equal(t, "interactable", LayerInteractable.String())
	assert.Equal(t, "none", LayerNone.String())
	assert.True(t, LayerPlayer.In(LayerPlayer|LayerGuard))
	assert.False(t, LayerHidden.In(LayerPlayer))
}
