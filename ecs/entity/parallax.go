package entity

import (
	"fmt"

	"github.com/milk9111/scroller/assets"
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/prefabs"
)

// NewParallaxLayers creates one background entity per configured layer, in
// file order. Layer size is the image size.
func NewParallaxLayers(w *ecs.World, spec prefabs.ParallaxSpec, catalog *assets.Catalog) error {
	for _, layer := range spec.Layers {
		width, height, ok := catalog.Size(layer.Image)
		if !ok {
			return fmt.Errorf("parallax: image %q: %w", layer.Image, assets.ErrMissingAsset)
		}
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.ParallaxComponent.Kind(), &component.Parallax{
			X:        layer.X,
			Y:        layer.Y,
			W:        width,
			H:        height,
			Ratio:    layer.Ratio,
			ImageKey: layer.Image,
		}); err != nil {
			return fmt.Errorf("parallax: add layer: %w", err)
		}
		if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
			return fmt.Errorf("parallax: add render layer: %w", err)
		}
	}
	return nil
}
