package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devterrific/raucher/internal/game"
	"github.com/devterrific/raucher/internal/snitch"
	"github.com/devterrific/raucher/internal/spawn"
)

type recordingLoader struct {
	scenes []string
}

func (r *recordingLoader) LoadScene(name string) { r.scenes = append(r.scenes, name) }

func TestLoad_Default(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)

	for _, name := range []string{spawn.SceneBuro, spawn.SceneFlur, spawn.SceneSmoking} {
		_, ok := l.Scene(name)
		assert.True(t, ok, name)
	}

	smoking, _ := l.Scene(spawn.SceneSmoking)
	assert.True(t, smoking.Minigame)
}

func TestLoad_DefaultCoversSpawnTable(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		scene string
		id    string
	}{
		{spawn.SceneBuro, spawn.StartBuro},
		{spawn.SceneBuro, spawn.DoorBuro},
		{spawn.SceneFlur, spawn.LeftFlur},
		{spawn.SceneFlur, spawn.RightFlur},
		{spawn.SceneSmoking, spawn.StartSmoking},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			sc, err := l.Instantiate(tt.scene, nil, nil, nil)
			require.NoError(t, err)
			_, ok := sc.SpawnPoint(tt.id)
			assert.True(t, ok)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad json", `{`},
		{"no scenes", `{"scenes": []}`},
		{"unnamed scene", `{"scenes": [{"name": ""}]}`},
		{"duplicate", `{"scenes": [{"name": "A"}, {"name": "A"}]}`},
		{"dangling door", `{"scenes": [{"name": "A", "doors": [{"target": "B"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scenes": [{"name": "Solo"}]}`), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	_, ok := l.Scene("Solo")
	assert.True(t, ok)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestInstantiate_UnknownScene(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)

	_, err = l.Instantiate("Keller", nil, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownScene)
}

const testLevel = `{
  "scenes": [
    {
      "name": "A",
      "spawns": {"start": {"x": 0, "y": 0}},
      "hide_zones": [{"center": {"x": 2, "y": 0}, "width": 1, "height": 1, "sprite": "crouch"}],
      "doors": [{"center": {"x": -1, "y": 0}, "width": 1, "height": 2, "target": "B"}],
      "snitches": [{"start": {"x": 6, "y": 0}, "patrol": {"waypoints": [{"x": 6, "y": 0}], "speed": 1, "pause": 1}}]
    },
    {"name": "B"}
  ]
}`

func TestInstantiate_WiresWorld(t *testing.T) {
	l, err := Parse([]byte(testLevel))
	require.NoError(t, err)

	loader := &recordingLoader{}
	p := game.NewPlayer(game.Vec2{}, game.DefaultMovementConfig())
	var caught []snitch.CaughtEvent

	sc, err := l.Instantiate("A", p, loader, func(ev snitch.CaughtEvent) { caught = append(caught, ev) })
	require.NoError(t, err)
	require.Len(t, sc.HideZones, 1)
	require.Len(t, sc.Doors, 1)
	require.Len(t, sc.Snitches, 1)
	assert.Len(t, sc.World.Bodies(), 4)

	// The guard faces right from x=6, so it cannot see the player at x=0.
	sc.Update(0.1)
	assert.Empty(t, caught)

	// Pressing interact at the spawn reaches the door first.
	p.Update(0.02, game.Input{Interact: true})
	assert.Equal(t, []string{"B"}, loader.scenes)
}

func TestScene_ReleaseExitsHideZones(t *testing.T) {
	l, err := Parse([]byte(testLevel))
	require.NoError(t, err)

	p := game.NewPlayer(game.Vec2{X: 1.4}, game.DefaultMovementConfig())
	sc, err := l.Instantiate("A", p, nil, nil)
	require.NoError(t, err)

	z := sc.HideZones[0]
	z.Interact(p)
	require.True(t, p.IsHiddenBy(z.Reason()))
	require.False(t, p.CanMove())

	sc.Release(p)
	assert.True(t, p.CanMove())
	assert.True(t, p.Detectable())
	assert.Len(t, sc.World.Bodies(), 3)
}

func TestInstantiate_PartialVisionKeepsDefaults(t *testing.T) {
	doc := `{
  "scenes": [{
    "name": "A",
    "snitches": [{
      "start": {"x": 0, "y": 0},
      "patrol": {"waypoints": [{"x": 0, "y": 0}], "speed": 1, "pause": 1},
      "vision": {"eye": null, "suspicion": {"x": 0.3, "y": -0.2}, "view_distance": 5}
    }]
  }]
}`
	l, err := Parse([]byte(doc))
	require.NoError(t, err)

	p := game.NewPlayer(game.Vec2{X: 3}, game.DefaultMovementConfig())
	var caught []snitch.CaughtEvent
	sc, err := l.Instantiate("A", p, nil, func(ev snitch.CaughtEvent) { caught = append(caught, ev) })
	require.NoError(t, err)

	res := sc.Update(0.02)
	require.Len(t, res, 1)
	assert.True(t, res[0].SuspicionHit)
	assert.Empty(t, caught, "one frame of contact is not enough")

	for i := 0; i < 149; i++ {
		sc.Update(0.02)
	}
	require.NotEmpty(t, caught, "sustained contact for the default time catches")
	assert.Equal(t, snitch.CatchSuspicion, caught[0].Kind)
}
