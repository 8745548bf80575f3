package component

import "image/color"

// Drawable is one draw call in screen space. An empty ImageKey means a solid
// Fill rectangle; Outline strokes it instead.
type Drawable struct {
	ImageKey string
	Src      Rect
	Dst      Rect
	Fill     color.NRGBA
	Outline  bool
	Layer    int
}
