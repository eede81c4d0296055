// Package spawn decides where the player appears after a scene change.
package spawn

// Scene names.
const (
	SceneBuro    = "Buro"
	SceneFlur    = "Flur"
	SceneSmoking = "Smoking Mini Game"
)

// Spawn point IDs.
const (
	StartBuro    = "Start_Buro"
	DoorBuro     = "Door_Buro"
	LeftFlur     = "Links_Flur"
	RightFlur    = "Rechts_Flur"
	StartSmoking = "Start_Smoking"
)

// Picker remembers whether the first spawn of the run already happened.
// The first spawn uses each scene's start point; later transitions use the
// point that matches the scene the player came from.
type Picker struct {
	firstSpawnDone bool
}

// NewPicker creates a picker for a fresh run.
func NewPicker() *Picker {
	return &Picker{}
}

// Pick returns the spawn point ID for entering current from the scene
// named from ("" on game start) and marks the first spawn as done.
func (p *Picker) Pick(current, from string) string {
	id := p.pick(current, from)
	p.firstSpawnDone = true
	return id
}

// FirstSpawnDone reports whether Pick was called at least once.
func (p *Picker) FirstSpawnDone() bool {
	return p.firstSpawnDone
}

// Reset starts a new run.
func (p *Picker) Reset() {
	p.firstSpawnDone = false
}

func (p *Picker) pick(current, from string) string {
	if !p.firstSpawnDone {
		switch current {
		case SceneBuro:
			return StartBuro
		case SceneFlur:
			return LeftFlur
		case SceneSmoking:
			return StartSmoking
		}
	}

	switch {
	case current == SceneFlur && from == SceneBuro:
		return LeftFlur
	case current == SceneBuro && from == SceneFlur:
		return DoorBuro
	case current == SceneSmoking && from == SceneFlur:
		return StartSmoking
	case current == SceneFlur && from == SceneSmoking:
		return RightFlur
	}

	// Fallbacks: the office start point is only used once.
	switch current {
	case SceneBuro:
		return DoorBuro
	case SceneFlur:
		return LeftFlur
	case SceneSmoking:
		return StartSmoking
	}
	return DoorBuro
}
