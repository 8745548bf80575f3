package entity

import (
	"github.com/milk9111/scroller/assets"
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/prefabs"
)

// NewPlayer builds the actor from the player prefab already loaded and
// validated with the rest of the config.
func NewPlayer(w *ecs.World, spec prefabs.EntityBuildSpec, catalog *assets.Catalog) (ecs.Entity, error) {
	return BuildEntity(w, spec, catalog)
}
