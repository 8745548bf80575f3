package component

// Camera tracks the horizontal scroll. Offset and ScrollDistance move together
// and never go below zero.
type Camera struct {
	Offset         float64
	ScrollDistance float64
	LeftBound      float64
	RightBound     float64
}

// ToScreen converts a world x to screen x for a layer scrolling at ratio.
// Actor, platforms and hazards use ratio 1.
func (c *Camera) ToScreen(worldX, ratio float64) float64 {
	return worldX - c.Offset*ratio
}

var CameraComponent = NewComponent[Camera]()
