package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/physics"
)

// CollisionSystem lands the actor on platform tops and records the result as
// the grounded flag for the next frame.
type CollisionSystem struct {
	platforms []*component.Body
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	c.platforms = c.platforms[:0]
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, body *component.Body) {
		c.platforms = append(c.platforms, body)
	})

	_, body, player, ok := actor(w)
	if !ok {
		return
	}
	player.Grounded = physics.ResolveLanding(body, c.platforms) >= 0
}
