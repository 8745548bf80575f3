package system

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
)

// TerminalSystem checks the end-of-run conditions after everything else has
// moved: the actor falling below the frame, and the camera scrolling past
// the win line. The win latches and fires EventWon once.
type TerminalSystem struct {
	FrameHeight float64
	WinDistance float64
}

func NewTerminalSystem(frameHeight, winDistance float64) *TerminalSystem {
	return &TerminalSystem{FrameHeight: frameHeight, WinDistance: winDistance}
}

func (t *TerminalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if e, body, _, ok := actor(w); ok && body.Pos.Y > t.FrameHeight {
		w.Events().Push(ecs.Event{Type: ecs.EventFellOut, Entity: e})
		return
	}

	term, ok := terminal(w)
	if !ok || term.State == component.TerminalWon {
		return
	}
	cam, ok := camera(w)
	if !ok {
		return
	}
	if cam.ScrollDistance >= t.WinDistance {
		term.State = component.TerminalWon
		w.Events().Push(ecs.Event{Type: ecs.EventWon, Data: cam.ScrollDistance})
	}
}
