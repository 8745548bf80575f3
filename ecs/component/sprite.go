package component

// Sprite draws a registered image by key. When UseSource is false the whole
// image is drawn at its natural size.
type Sprite struct {
	ImageKey  string
	Source    Rect
	UseSource bool
}

var SpriteComponent = NewComponent[Sprite]()
