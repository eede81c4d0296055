package level

import (
	"fmt"
	"log/slog"

	"github.com/devterrific/raucher/internal/game"
	"github.com/devterrific/raucher/internal/snitch"
)

// Scene is a live instance of a SceneDef: its world, guards and
// interactables.
type Scene struct {
	Name      string
	World     *game.World
	Snitches  []*snitch.Snitch
	HideZones []*game.HideZone
	Doors     []*game.Door
	Minigame  bool

	spawns map[string]game.Vec2
}

// Instantiate builds scene name around p. Doors report to loader and guards
// report catches to onCaught.
func (l *Level) Instantiate(name string, p *game.Player, loader game.SceneLoader, onCaught func(snitch.CaughtEvent)) (*Scene, error) {
	def, ok := l.Scene(name)
	if !ok {
		return nil, fmt.Errorf("instantiate %q: %w", name, ErrUnknownScene)
	}

	w := game.NewWorld()
	sc := &Scene{
		Name:     def.Name,
		World:    w,
		Minigame: def.Minigame,
		spawns:   make(map[string]game.Vec2, len(def.Spawns)),
	}
	for id, pos := range def.Spawns {
		sc.spawns[id] = pos
	}

	for _, zd := range def.HideZones {
		z := game.NewHideZone(zd.Rect(), zd.Sprite)
		if zd.SideRange > 0 {
			z.SideRange = zd.SideRange
		}
		if zd.SideHeight > 0 {
			z.SideHeight = zd.SideHeight
		}
		sc.HideZones = append(sc.HideZones, z)
		w.Add(z)
	}
	for _, dd := range def.Doors {
		d := game.NewDoor(dd.Rect(), dd.Target, loader)
		sc.Doors = append(sc.Doors, d)
		w.Add(d)
	}

	if p != nil {
		w.Add(p)
		p.SetWorld(w)
	}

	for _, gd := range def.Snitches {
		vision := snitch.DefaultVisionConfig()
		if gd.Vision != nil {
			vision = *gd.Vision
		}
		if len(gd.Patrol.Waypoints) == 0 {
			slog.Warn("snitch has no waypoints", "scene", def.Name)
		}
		g := snitch.New(snitch.Config{Start: gd.Start, Patrol: gd.Patrol, Vision: vision}, w, onCaught)
		sc.Snitches = append(sc.Snitches, g)
		w.Add(g)
	}

	slog.Debug("scene instantiated", "scene", def.Name,
		"hide_zones", len(sc.HideZones), "doors", len(sc.Doors), "snitches", len(sc.Snitches))
	return sc, nil
}

// SpawnPoint looks up a spawn position by ID.
func (s *Scene) SpawnPoint(id string) (game.Vec2, bool) {
	pos, ok := s.spawns[id]
	return pos, ok
}

// Update advances every guard by dt and returns their results in order.
func (s *Scene) Update(dt float64) []snitch.VisionResult {
	results := make([]snitch.VisionResult, len(s.Snitches))
	for i, g := range s.Snitches {
		results[i] = g.Update(dt)
	}
	return results
}

// Release takes p out of every hide zone of this scene and off its world.
// Call it before leaving the scene so no lock outlives the zone.
func (s *Scene) Release(p *game.Player) {
	if p == nil {
		return
	}
	for _, z := range s.HideZones {
		if p.IsHiddenBy(z.Reason()) {
			p.ExitHidezone(z.Reason())
		}
	}
	s.World.Remove(p)
}
