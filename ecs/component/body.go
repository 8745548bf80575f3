package component

import "github.com/jakecoffman/cp"

// Body is an axis-aligned rectangle in world space. Pos is the top-left
// corner; y grows downward.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector
	W   float64
	H   float64
}

func (b *Body) Left() float64   { return b.Pos.X }
func (b *Body) Right() float64  { return b.Pos.X + b.W }
func (b *Body) Top() float64    { return b.Pos.Y }
func (b *Body) Bottom() float64 { return b.Pos.Y + b.H }

// Rect returns the body's bounds.
func (b *Body) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

var BodyComponent = NewComponent[Body]()
