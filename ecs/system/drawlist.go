package system

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
)

var (
	debugPlayerColor   = color.NRGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff}
	debugPlatformColor = color.NRGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xff}
	debugHazardColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0x40, A: 0xff}
)

// DrawListSystem converts the world into screen-space draw calls. It is the
// only stage that applies the camera transform.
type DrawListSystem struct {
	FrameW float64
	FrameH float64
	Debug  bool

	list []component.Drawable
}

func NewDrawListSystem(frameW, frameH float64) *DrawListSystem {
	return &DrawListSystem{FrameW: frameW, FrameH: frameH}
}

// Drawables returns the list built by the last Update, back to front.
func (d *DrawListSystem) Drawables() []component.Drawable {
	return d.list
}

func (d *DrawListSystem) Update(w *ecs.World) {
	d.list = d.list[:0]
	if w == nil {
		return
	}
	cam, ok := camera(w)
	if !ok {
		cam = &component.Camera{}
	}

	ecs.ForEach2(w, component.ParallaxComponent.Kind(), component.RenderLayerComponent.Kind(), func(_ ecs.Entity, layer *component.Parallax, rl *component.RenderLayer) {
		d.appendParallax(cam, layer, rl.Index)
	})

	ecs.ForEach3(w, component.SpriteComponent.Kind(), component.BodyComponent.Kind(), component.RenderLayerComponent.Kind(), func(_ ecs.Entity, sprite *component.Sprite, body *component.Body, rl *component.RenderLayer) {
		dst := d.screenRect(cam, body)
		if !d.visible(dst) {
			return
		}
		src := component.Rect{W: body.W, H: body.H}
		if sprite.UseSource {
			src = sprite.Source
		}
		d.list = append(d.list, component.Drawable{ImageKey: sprite.ImageKey, Src: src, Dst: dst, Layer: rl.Index})
	})

	ecs.ForEach3(w, component.HazardComponent.Kind(), component.BodyComponent.Kind(), component.RenderLayerComponent.Kind(), func(_ ecs.Entity, hazard *component.Hazard, body *component.Body, rl *component.RenderLayer) {
		dst := d.screenRect(cam, body)
		if !d.visible(dst) {
			return
		}
		d.list = append(d.list, component.Drawable{Dst: dst, Fill: hazard.Color, Layer: rl.Index})
	})

	if d.Debug {
		d.appendDebug(w, cam)
	}

	slices.SortStableFunc(d.list, func(a, b component.Drawable) int {
		return cmp.Compare(a.Layer, b.Layer)
	})
}

// appendParallax repeats the layer image across the frame at its scroll ratio.
func (d *DrawListSystem) appendParallax(cam *component.Camera, layer *component.Parallax, index int) {
	if layer.W <= 0 || layer.H <= 0 {
		return
	}
	start := math.Mod(cam.ToScreen(layer.X, layer.Ratio), layer.W)
	if start > 0 {
		start -= layer.W
	}
	for x := start; x < d.FrameW; x += layer.W {
		d.list = append(d.list, component.Drawable{
			ImageKey: layer.ImageKey,
			Src:      component.Rect{W: layer.W, H: layer.H},
			Dst:      component.Rect{X: x, Y: layer.Y, W: layer.W, H: layer.H},
			Layer:    index,
		})
	}
}

func (d *DrawListSystem) appendDebug(w *ecs.World, cam *component.Camera) {
	outline := func(body *component.Body, c color.NRGBA) {
		dst := d.screenRect(cam, body)
		if d.visible(dst) {
			d.list = append(d.list, component.Drawable{Dst: dst, Fill: c, Outline: true, Layer: math.MaxInt32})
		}
	}
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, body *component.Body) {
		outline(body, debugPlatformColor)
	})
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Hazard, body *component.Body) {
		outline(body, debugHazardColor)
	})
	if _, body, _, ok := actor(w); ok {
		outline(body, debugPlayerColor)
	}
}

func (d *DrawListSystem) screenRect(cam *component.Camera, body *component.Body) component.Rect {
	return component.Rect{X: cam.ToScreen(body.Pos.X, 1), Y: body.Pos.Y, W: body.W, H: body.H}
}

func (d *DrawListSystem) visible(r component.Rect) bool {
	return r.X+r.W >= 0 && r.X <= d.FrameW && r.Y+r.H >= 0 && r.Y <= d.FrameH
}
