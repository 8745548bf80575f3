package component

// RenderLayer orders drawables; lower indices draw first.
type RenderLayer struct {
	Index int
}

const (
	LayerBackground = 0
	LayerPlatforms  = 10
	LayerPlayer     = 20
	LayerHazards    = 30
)

var RenderLayerComponent = NewComponent[RenderLayer]()
