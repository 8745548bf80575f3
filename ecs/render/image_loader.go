package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/scroller/assets"
)

// RegisterCatalog uploads every decoded catalog image and registers it under
// its asset key, replacing anything registered before.
func RegisterCatalog(catalog *assets.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("render: catalog is nil")
	}
	ResetImages()
	for _, key := range catalog.Keys() {
		a, _ := catalog.Get(key)
		if a.Image == nil {
			return fmt.Errorf("render: asset %q has no image: %w", key, assets.ErrMissingAsset)
		}
		RegisterImage(key, ebiten.NewImageFromImage(a.Image))
	}
	return nil
}
