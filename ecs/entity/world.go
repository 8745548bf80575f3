package entity

import (
	"fmt"

	"github.com/milk9111/scroller/assets"
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/levels"
	"github.com/milk9111/scroller/prefabs"
)

// BuildWorld assembles a fresh world: backgrounds, the level, the actor, the
// camera and the terminal latch.
func BuildWorld(cfg *prefabs.Config, layout *levels.Layout, catalog *assets.Catalog) (*ecs.World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("build world: config is nil")
	}
	w := ecs.NewWorld()

	if err := NewParallaxLayers(w, cfg.Parallax, catalog); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if err := LoadLevelToWorld(w, layout, cfg); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if _, err := NewPlayer(w, cfg.Player, catalog); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if _, err := NewCamera(w, cfg.Camera); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	state := ecs.CreateEntity(w)
	if err := ecs.Add(w, state, component.TerminalComponent.Kind(), &component.Terminal{State: component.TerminalNone}); err != nil {
		return nil, fmt.Errorf("build world: add terminal: %w", err)
	}
	return w, nil
}
