package component

// Parallax is a background layer drawn at Ratio of the camera offset. It has
// no collision.
type Parallax struct {
	X        float64
	Y        float64
	W        float64
	H        float64
	Ratio    float64
	ImageKey string
}

var ParallaxComponent = NewComponent[Parallax]()
