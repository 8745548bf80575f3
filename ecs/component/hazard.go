package component

import "image/color"

// Hazard patrols horizontally around AnchorX, never leaving
// [AnchorX-Bound, AnchorX+Bound]. Touching it ends the run.
type Hazard struct {
	AnchorX float64
	Bound   float64
	Speed   float64
	Color   color.NRGBA
}

var HazardComponent = NewComponent[Hazard]()
