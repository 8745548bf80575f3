package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/physics"
)

// HazardSystem moves every hazard along its patrol and raises
// EventHazardContact when one overlaps the actor.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

func (h *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.HazardComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, hazard *component.Hazard, body *component.Body) {
		Patrol(hazard, body)
	})

	playerEntity, playerBody, _, ok := actor(w)
	if !ok {
		return
	}

	hit := false
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, _ *component.Hazard, body *component.Body) {
		if hit || !physics.Overlaps(playerBody, body) {
			return
		}
		hit = true
		w.Events().Push(ecs.Event{Type: ecs.EventHazardContact, Entity: playerEntity, Data: e})
	})
}

// Patrol advances body by one step and reflects it at the edges of
// [AnchorX-Bound, AnchorX+Bound], so its x never leaves that range.
func Patrol(hazard *component.Hazard, body *component.Body) {
	if body.Vel.X == 0 {
		body.Vel.X = hazard.Speed
	}

	body.Pos.X += body.Vel.X

	lo, hi := hazard.AnchorX-hazard.Bound, hazard.AnchorX+hazard.Bound
	switch {
	case body.Pos.X < lo:
		body.Pos.X = lo
		if body.Vel.X < 0 {
			body.Vel.X = -body.Vel.X
		}
	case body.Pos.X > hi:
		body.Pos.X = hi
		if body.Vel.X > 0 {
			body.Vel.X = -body.Vel.X
		}
	}
}
