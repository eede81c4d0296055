package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick_FirstSpawn(t *testing.T) {
	tests := []struct {
		scene    string
		expected string
	}{
		{SceneBuro, StartBuro},
		{SceneFlur, LeftFlur},
		{SceneSmoking, StartSmoking},
		{"Keller", DoorBuro},
	}

	for _, tt := range tests {
		t.Run(tt.scene, func(t *testing.T) {
			p := NewPicker()
			assert.Equal(t, tt.expected, p.Pick(tt.scene, ""))
			assert.True(t, p.FirstSpawnDone())
		})
	}
}

func TestPick_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		from     string
		expected string
	}{
		{"buro to flur", SceneFlur, SceneBuro, LeftFlur},
		{"flur to buro", SceneBuro, SceneFlur, DoorBuro},
		{"flur to smoking", SceneSmoking, SceneFlur, StartSmoking},
		{"smoking to flur", SceneFlur, SceneSmoking, RightFlur},
		{"reload buro", SceneBuro, "", DoorBuro},
		{"reload flur", SceneFlur, "", LeftFlur},
		{"unknown scene", "Keller", SceneFlur, DoorBuro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPicker()
			p.Pick(SceneBuro, "")
			assert.Equal(t, tt.expected, p.Pick(tt.current, tt.from))
		})
	}
}

func TestPick_StartOnlyOnce(t *testing.T) {
	p := NewPicker()
	assert.Equal(t, StartBuro, p.Pick(SceneBuro, ""))
	assert.Equal(t, DoorBuro, p.Pick(SceneBuro, ""))

	p.Reset()
	assert.False(t, p.FirstSpawnDone())
	assert.Equal(t, StartBuro, p.Pick(SceneBuro, ""))
}
