package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/scroller/game"
)

const stickDeadzone = 0.2

// Input samples the keyboard and the first gamepad. Movement and jump are
// reported as held; the core does its own edge detection for jumps.
type Input struct {
	MusicPressed    bool
	CopySeedPressed bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Sample() game.InputSnapshot {
	in := game.InputSnapshot{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump: ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeySpace),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
	i.MusicPressed = inpututil.IsKeyJustPressed(ebiten.KeyM)
	i.CopySeedPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.MoveLeft = in.MoveLeft || x < -stickDeadzone ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.MoveRight = in.MoveRight || x > stickDeadzone ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Restart = in.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return in
}
