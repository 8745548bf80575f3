package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/scroller/ecs/component"
)

var (
	missingImageColor = color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	quadIndices       = []uint16{0, 1, 2, 1, 2, 3}
)

// Draw renders a draw list in order. Image crops keep their fractional
// source coordinates; unknown image keys draw as a magenta block.
func Draw(screen *ebiten.Image, list []component.Drawable) {
	if screen == nil {
		return
	}
	for _, d := range list {
		switch {
		case d.Outline:
			vector.StrokeRect(screen, float32(d.Dst.X), float32(d.Dst.Y), float32(d.Dst.W), float32(d.Dst.H), 1, d.Fill, false)
		case d.ImageKey == "":
			vector.FillRect(screen, float32(d.Dst.X), float32(d.Dst.Y), float32(d.Dst.W), float32(d.Dst.H), d.Fill, false)
		default:
			img := GetImage(d.ImageKey)
			if img == nil {
				vector.FillRect(screen, float32(d.Dst.X), float32(d.Dst.Y), float32(d.Dst.W), float32(d.Dst.H), missingImageColor, false)
				continue
			}
			drawImageRect(screen, img, d.Src, d.Dst)
		}
	}
}

// drawImageRect maps src on img onto dst on screen with two triangles, so
// sub-pixel sheet crops are sampled where they fall instead of being rounded
// to whole pixels.
func drawImageRect(screen, img *ebiten.Image, src, dst component.Rect) {
	if src.W <= 0 || src.H <= 0 {
		b := img.Bounds()
		src = component.Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), W: float64(b.Dx()), H: float64(b.Dy())}
	}
	vertex := func(dx, dy, sx, sy float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   float32(sx),
			SrcY:   float32(sy),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	vs := []ebiten.Vertex{
		vertex(dst.X, dst.Y, src.X, src.Y),
		vertex(dst.X+dst.W, dst.Y, src.X+src.W, src.Y),
		vertex(dst.X, dst.Y+dst.H, src.X, src.Y+src.H),
		vertex(dst.X+dst.W, dst.Y+dst.H, src.X+src.W, src.Y+src.H),
	}
	screen.DrawTriangles(vs, quadIndices, img, &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear})
}
