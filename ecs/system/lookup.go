package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
)

// actor returns the body and controller of the single player entity.
func actor(w *ecs.World) (ecs.Entity, *component.Body, *component.Player, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	return e, body, player, true
}

func camera(w *ecs.World) (*component.Camera, bool) {
	e, ok := ecs.First(w, component.CameraTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.CameraComponent.Kind())
}

func terminal(w *ecs.World) (*component.Terminal, bool) {
	e, ok := ecs.First(w, component.TerminalComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.TerminalComponent.Kind())
}

func won(w *ecs.World) bool {
	t, ok := terminal(w)
	return ok && t.State == component.TerminalWon
}
