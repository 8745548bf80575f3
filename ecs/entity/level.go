package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/levels"
	"github.com/milk9111/scroller/prefabs"
)

// LoadLevelToWorld creates a platform entity for every ground and floating
// tile, and a hazard for every spawn. Entities are created in x order within
// each group.
func LoadLevelToWorld(w *ecs.World, layout *levels.Layout, cfg *prefabs.Config) error {
	if layout == nil {
		return fmt.Errorf("level: layout is nil")
	}

	for _, t := range layout.Ground {
		if err := addPlatform(w, t, component.PlatformGround, cfg.World.GroundTile); err != nil {
			return err
		}
	}
	for _, t := range layout.Floating {
		if err := addPlatform(w, t, component.PlatformFloating, cfg.World.SmallTile); err != nil {
			return err
		}
	}
	for _, h := range layout.Hazards {
		if _, err := NewHazard(w, h, cfg.Hazard); err != nil {
			return err
		}
	}
	return nil
}

func addPlatform(w *ecs.World, t levels.Tile, kind component.PlatformKind, tileKey string) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Kind: kind, TileKey: tileKey}); err != nil {
		return fmt.Errorf("level: add platform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Pos: cp.Vector{X: t.X, Y: t.Y},
		W:   t.W,
		H:   t.H,
	}); err != nil {
		return fmt.Errorf("level: add platform body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{ImageKey: tileKey}); err != nil {
		return fmt.Errorf("level: add platform sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlatforms}); err != nil {
		return fmt.Errorf("level: add platform render layer: %w", err)
	}
	return nil
}
