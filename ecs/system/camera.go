package system

import (
	"math"

	"github.com/milk9111/scroller/ecs"
)

// CameraSystem applies the dead-band scroll rule. The actor keeps moving in
// world space; the camera offset follows it once it leaves [LeftBound,
// RightBound] on screen.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, body, _, ok := actor(w)
	if !ok {
		return
	}
	cam, ok := camera(w)
	if !ok {
		return
	}

	// The world has no left side past x = 0.
	if body.Pos.X+body.Vel.X < 0 {
		body.Vel.X = -body.Pos.X
	}

	screenX := cam.ToScreen(body.Pos.X, 1)
	switch {
	case body.Vel.X > 0 && screenX >= cam.RightBound:
		cam.Offset += body.Vel.X
		cam.ScrollDistance += body.Vel.X
	case body.Vel.X < 0 && cam.Offset > 0 && screenX <= cam.LeftBound:
		step := math.Min(-body.Vel.X, cam.Offset)
		cam.Offset -= step
		cam.ScrollDistance -= step
	}

	if cam.Offset < 0 {
		cam.Offset = 0
	}
	if cam.ScrollDistance < 0 {
		cam.ScrollDistance = 0
	}
}
