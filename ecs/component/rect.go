package component

// Rect is a float rectangle. Source crops keep fractional widths, so
// image.Rectangle is not used here.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}
