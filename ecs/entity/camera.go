package entity

import (
	"fmt"

	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/prefabs"
)

// NewCamera creates the camera at offset zero with the configured dead band.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		LeftBound:  spec.LeftBound,
		RightBound: spec.RightBound,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
