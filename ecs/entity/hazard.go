package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/levels"
	"github.com/milk9111/scroller/prefabs"
)

func NewHazard(w *ecs.World, spawn levels.HazardSpawn, spec prefabs.HazardSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		AnchorX: spawn.AnchorX,
		Bound:   spawn.Bound,
		Speed:   spec.Speed,
		Color:   spec.Color.NRGBA(),
	}); err != nil {
		return 0, fmt.Errorf("hazard: add hazard: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Pos: cp.Vector{X: spawn.X, Y: spawn.Y},
		Vel: cp.Vector{X: spec.Speed},
		W:   spawn.W,
		H:   spawn.H,
	}); err != nil {
		return 0, fmt.Errorf("hazard: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("hazard: add render layer: %w", err)
	}
	return e, nil
}
