package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
)

// PlayerControllerSystem turns input into intent: horizontal velocity,
// facing, movement state and the jump impulse.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, player *component.Player, input *component.Input, body *component.Body) {
		switch {
		case input.MoveRight:
			body.Vel.X = player.Speed
		case input.MoveLeft:
			body.Vel.X = -player.Speed
		default:
			body.Vel.X = 0
		}

		switch {
		case body.Vel.X > 0:
			player.Facing = component.FacingRight
			player.Move = component.MoveRunning
		case body.Vel.X < 0:
			player.Facing = component.FacingLeft
			player.Move = component.MoveRunning
		default:
			player.Move = component.MoveIdle
		}

		// Grounded still holds last frame's landing result here.
		if input.JumpPressed && player.Grounded {
			body.Vel.Y = player.JumpImpulse
		}
	})
}
