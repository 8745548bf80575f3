package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Placeholder synthesises every manifest entry from its declared size and
// colour, so the game runs without art files.
func Placeholder(m Manifest) *Catalog {
	c := NewCatalog()
	for _, e := range m.Entries {
		c.Put(placeholderAsset(e))
	}
	return c
}

func placeholderAsset(e Entry) *Asset {
	w, h := max(e.Width, 1), max(e.Height, 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill := e.Color
	if fill.A == 0 && e.Kind != KindImage {
		fill = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	}

	switch {
	case e.Kind == KindImage && fill.A < 0xff:
		// Translucent backgrounds are overlays: an opaque band along the
		// bottom with the rest left clear.
		band := color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 0xff}
		draw.Draw(img, image.Rect(0, h*3/5, w, h), &image.Uniform{C: band}, image.Point{}, draw.Src)
	case e.Kind == KindImage:
		draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
		shadeBottom(img, fill)
	default:
		draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
		if e.Kind == KindSheet {
			stripeFrames(img, e.Frames, fill)
		}
	}

	return &Asset{
		Key:         e.Key,
		Kind:        e.Kind,
		Frames:      e.Frames,
		Width:       w,
		Height:      h,
		Image:       img,
		Placeholder: true,
	}
}

// stripeFrames darkens every other frame and marks a bar whose height follows
// the frame index, so a running animation is visible.
func stripeFrames(img *image.NRGBA, frames int, base color.NRGBA) {
	if frames <= 0 {
		return
	}
	b := img.Bounds()
	fw := float64(b.Dx()) / float64(frames)
	dark := color.NRGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: base.A}
	mark := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for i := 0; i < frames; i++ {
		x0, x1 := int(float64(i)*fw), int(float64(i+1)*fw)
		if i%2 == 1 {
			draw.Draw(img, image.Rect(x0, 0, x1, b.Dy()), &image.Uniform{C: dark}, image.Point{}, draw.Src)
		}
		barH := b.Dy() * (i + 1) / frames
		draw.Draw(img, image.Rect(x0, b.Dy()-barH, min(x0+4, x1), b.Dy()), &image.Uniform{C: mark}, image.Point{}, draw.Src)
	}
}

// shadeBottom fades the lower third of a background towards black.
func shadeBottom(img *image.NRGBA, base color.NRGBA) {
	b := img.Bounds()
	start := b.Dy() * 2 / 3
	for y := start; y < b.Dy(); y++ {
		t := float64(y-start) / float64(b.Dy()-start)
		c := color.NRGBA{
			R: uint8(float64(base.R) * (1 - t/2)),
			G: uint8(float64(base.G) * (1 - t/2)),
			B: uint8(float64(base.B) * (1 - t/2)),
			A: base.A,
		}
		draw.Draw(img, image.Rect(0, y, b.Dx(), y+1), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
}
