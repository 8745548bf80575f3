package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/physics"
)

// PhysicsSystem integrates the actor. Platforms and hazards are not
// integrated: platforms are static and hazards move on their patrol.
type PhysicsSystem struct {
	Gravity float64
	Floor   float64
}

func NewPhysicsSystem(gravity, floor float64) *PhysicsSystem {
	return &PhysicsSystem{Gravity: gravity, Floor: floor}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Player, body *component.Body) {
		physics.Integrate(body, p.Gravity, p.Floor)
	})
}
