package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		player, hasPlayer := ecs.Get(w, e, component.PlayerComponent.Kind())
		body, hasBody := ecs.Get(w, e, component.BodyComponent.Kind())
		if hasPlayer && hasBody {
			anim.Select(ClipFor(body.Vel.X, player.Facing))
		}

		anim.Tick()

		sprite.ImageKey = anim.SheetKey()
		sprite.Source = anim.CropRect()
		sprite.UseSource = true
	})
}

// ClipFor picks the actor clip: running while moving, otherwise idle in the
// last facing direction.
func ClipFor(vx float64, facing component.Facing) string {
	switch {
	case vx > 0:
		return component.AnimRunRight
	case vx < 0:
		return component.AnimRunLeft
	case facing == component.FacingLeft:
		return component.AnimIdleLeft
	default:
		return component.AnimIdleRight
	}
}
