// Package level loads scene layouts and builds playable scene instances.
package level

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/devterrific/raucher/internal/game"
	"github.com/devterrific/raucher/internal/snitch"
)

//go:embed default_level.json
var defaultLevel []byte

var ErrUnknownScene = errors.New("unknown scene")

// Box is a rectangle given by center and full size.
type Box struct {
	Center game.Vec2 `json:"center"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

func (b Box) Rect() game.Rect {
	return game.NewRect(b.Center, b.Width, b.Height)
}

type HideZoneDef struct {
	Box
	Sprite     string  `json:"sprite"`
	SideRange  float64 `json:"side_range,omitempty"`
	SideHeight float64 `json:"side_height,omitempty"`
}

type DoorDef struct {
	Box
	Target string `json:"target"`
}

// SnitchDef describes a guard. A missing vision block uses
// snitch.DefaultVisionConfig; a partial one overrides only the fields it
// names.
type SnitchDef struct {
	Start  game.Vec2            `json:"start"`
	Patrol snitch.PatrolConfig  `json:"patrol"`
	Vision *snitch.VisionConfig `json:"vision,omitempty"`
}

type SceneDef struct {
	Name      string               `json:"name"`
	Spawns    map[string]game.Vec2 `json:"spawns"`
	HideZones []HideZoneDef        `json:"hide_zones"`
	Doors     []DoorDef            `json:"doors"`
	Snitches  []SnitchDef          `json:"snitches"`
	Minigame  bool                 `json:"minigame"`
}

// Level is the full set of scenes.
type Level struct {
	Scenes []SceneDef `json:"scenes"`

	byName map[string]int
}

// Load reads a level file, or the embedded default when path is empty.
func Load(path string) (*Level, error) {
	data := defaultLevel
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read level: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := l.index(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Level) index() error {
	if len(l.Scenes) == 0 {
		return errors.New("level has no scenes")
	}
	l.byName = make(map[string]int, len(l.Scenes))
	for i, s := range l.Scenes {
		if s.Name == "" {
			return fmt.Errorf("scene %d has no name", i)
		}
		if _, dup := l.byName[s.Name]; dup {
			return fmt.Errorf("duplicate scene %q", s.Name)
		}
		l.byName[s.Name] = i
	}
	for _, s := range l.Scenes {
		for _, d := range s.Doors {
			if _, ok := l.byName[d.Target]; !ok {
				return fmt.Errorf("scene %q: door target %q: %w", s.Name, d.Target, ErrUnknownScene)
			}
		}
	}
	return nil
}

// Scene returns the definition of name.
func (l *Level) Scene(name string) (SceneDef, bool) {
	i, ok := l.byName[name]
	if !ok {
		return SceneDef{}, false
	}
	return l.Scenes[i], true
}
