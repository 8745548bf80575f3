package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
)

// InputState is the held key state for one frame.
type InputState struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// InputSystem copies the frame's key state onto every Input component and
// turns the held jump key into a single-frame press.
type InputSystem struct {
	state    InputState
	prevJump bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Set stores the state the next Update applies.
func (i *InputSystem) Set(state InputState) {
	i.state = state
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	state := i.state
	if won(w) {
		state = InputState{}
	}
	jumpPressed := state.Jump && !i.prevJump
	i.prevJump = state.Jump

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveLeft = state.MoveLeft
		input.MoveRight = state.MoveRight
		input.Jump = state.Jump
		input.JumpPressed = jumpPressed
	})
}
