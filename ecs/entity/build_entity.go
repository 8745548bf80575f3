package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/scroller/assets"
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/prefabs"
)

type buildContext struct {
	Name    string
	Catalog *assets.Catalog
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"player":       addPlayer,
	"input":        addInput,
	"sprite":       addSprite,
	"body":         addBody,
	"render_layer": addRenderLayer,
	"animation":    addAnimation,
}

// Sprite comes before body so a body without a size can take the image's.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"player",
	"input",
	"sprite",
	"body",
	"render_layer",
	"animation",
}

// BuildEntity creates an entity from a component-map prefab. Image sizes and
// sheet frame counts are looked up in catalog.
func BuildEntity(w *ecs.World, spec prefabs.EntityBuildSpec, catalog *assets.Catalog) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", spec.Name)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{Name: spec.Name, Catalog: catalog}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	extra := make([]string, 0, len(remaining))
	for name := range remaining {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	names = append(names, extra...)

	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.MoveSpeed <= 0 {
		return fmt.Errorf("player: move speed %v must be positive", spec.MoveSpeed)
	}
	if spec.JumpSpeed > 0 {
		spec.JumpSpeed = -spec.JumpSpeed
	}
	facing := component.FacingRight
	if spec.Facing == string(component.FacingLeft) {
		facing = component.FacingLeft
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Speed:       spec.MoveSpeed,
		JumpImpulse: spec.JumpSpeed,
		Facing:      facing,
		Move:        component.MoveIdle,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Image != "" {
		if _, ok := ctx.Catalog.Get(spec.Image); !ok {
			return fmt.Errorf("sprite image %q: %w", spec.Image, assets.ErrMissingAsset)
		}
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{ImageKey: spec.Image})
}

type bodySpec = prefabs.BodyComponentSpec

func addBody(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode body spec: %w", err)
	}
	width, height := spec.Width, spec.Height
	if width == 0 || height == 0 {
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if a, ok := ctx.Catalog.Get(sprite.ImageKey); ok {
				if width == 0 {
					width = a.FrameWidth()
				}
				if height == 0 {
					height = float64(a.Height)
				}
			}
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("body: size %vx%v must be positive", width, height)
	}
	return ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Pos: cp.Vector{X: spec.X, Y: spec.Y},
		W:   width,
		H:   height,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return fmt.Errorf("animation: no clips")
	}

	clips := make(map[string]component.Clip, len(spec.Clips))
	for id, sheetKey := range spec.Clips {
		sheet, ok := ctx.Catalog.Get(sheetKey)
		if !ok {
			return fmt.Errorf("animation clip %q sheet %q: %w", id, sheetKey, assets.ErrMissingAsset)
		}
		frames := sheet.Frames
		if frames <= 0 {
			frames = 1
		}
		clips[id] = component.Clip{
			SheetKey: sheetKey,
			Frames:   frames,
			SheetW:   float64(sheet.Width),
			SheetH:   float64(sheet.Height),
		}
	}

	current := spec.Current
	if _, ok := clips[current]; !ok {
		return fmt.Errorf("animation: current clip %q is not defined", current)
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Clips:   clips,
		Current: current,
		Rate:    spec.Rate,
	})
}
