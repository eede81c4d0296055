package game

import "log/slog"

// SceneLoader switches the active scene. Implemented by the room that owns
// the playthrough.
type SceneLoader interface {
	LoadScene(name string)
}

// Door is an interactable that sends the player to another scene.
type Door struct {
	Box         Rect
	TargetScene string

	loader SceneLoader
}

// NewDoor creates a door leading to target.
func NewDoor(box Rect, target string, loader SceneLoader) *Door {
	return &Door{Box: box, TargetScene: target, loader: loader}
}

func (d *Door) Bounds() Rect { return d.Box }

func (d *Door) Layer() Layer { return LayerInteractable }

// CanInteract accepts any player.
func (d *Door) CanInteract(p *Player) bool {
	return p != nil
}

// Interact asks the loader to switch to the target scene.
func (d *Door) Interact(p *Player) {
	if p == nil {
		return
	}
	if d.TargetScene == "" {
		slog.Error("door has no target scene")
		return
	}
	if d.loader == nil {
		slog.Warn("door has no scene loader", "target", d.TargetScene)
		return
	}
	d.loader.LoadScene(d.TargetScene)
}
