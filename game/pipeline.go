package game

import (
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/system"
	"github.com/milk9111/scroller/prefabs"
)

// Stage names, in run order.
const (
	StageInput     = "input"
	StageIntent    = "intent"
	StageScroll    = "scroll"
	StageHazards   = "hazards"
	StageLanding   = "landing"
	StageIntegrate = "integrate"
	StageAnimate   = "animate"
	StageDrawList  = "draw_list"
	StageTerminal  = "terminal"
)

var StageNames = []string{
	StageInput,
	StageIntent,
	StageScroll,
	StageHazards,
	StageLanding,
	StageIntegrate,
	StageAnimate,
	StageDrawList,
	StageTerminal,
}

// Pipeline is the frame's ordered stage list. The input and draw-list stages
// are kept so the session can feed and read them.
type Pipeline struct {
	*ecs.Scheduler
	Input    *system.InputSystem
	DrawList *system.DrawListSystem
}

func NewPipeline(cfg *prefabs.Config, winDistance float64) *Pipeline {
	world := cfg.World
	p := &Pipeline{
		Input:    system.NewInputSystem(),
		DrawList: system.NewDrawListSystem(world.FrameWidth, world.FrameHeight),
	}
	p.Scheduler = ecs.NewScheduler(
		ecs.Stage{Name: StageInput, System: p.Input},
		ecs.Stage{Name: StageIntent, System: system.NewPlayerControllerSystem()},
		ecs.Stage{Name: StageScroll, System: system.NewCameraSystem()},
		ecs.Stage{Name: StageHazards, System: system.NewHazardSystem()},
		ecs.Stage{Name: StageLanding, System: system.NewCollisionSystem()},
		ecs.Stage{Name: StageIntegrate, System: system.NewPhysicsSystem(world.Gravity, world.FrameHeight)},
		ecs.Stage{Name: StageAnimate, System: system.NewAnimationSystem()},
		ecs.Stage{Name: StageDrawList, System: p.DrawList},
		ecs.Stage{Name: StageTerminal, System: system.NewTerminalSystem(world.FrameHeight, winDistance)},
	)
	return p
}

// lossRaised halts the pipeline as soon as a stage reports a loss.
func lossRaised(w *ecs.World) bool {
	q := w.Events()
	return q.Has(ecs.EventHazardContact) || q.Has(ecs.EventFellOut)
}
