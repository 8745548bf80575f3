package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"

	"github.com/milk9111/scroller/common"
	"github.com/milk9111/scroller/ecs/render"
	"github.com/milk9111/scroller/game"
	"github.com/milk9111/scroller/prefabs"
	"github.com/milk9111/scroller/sound"
)

const fpsSmoothing = 0.1

var clearColor = color.NRGBA{A: 0xff}

type Game struct {
	frames int

	session *game.Session
	input   *Input
	hud     *HUD
	drone   *sound.Drone
	watcher *prefabs.Watcher
	logger  *log.Logger

	copySeed       bool
	restartPending bool
	fps            common.Smoothed
	last           game.Signals
}

func NewGame(session *game.Session, drone *sound.Drone, watcher *prefabs.Watcher, logger *log.Logger, copySeed bool) *Game {
	g := &Game{
		session:  session,
		input:    NewInput(),
		drone:    drone,
		watcher:  watcher,
		logger:   logger,
		copySeed: copySeed,
		fps:      common.Smoothed{Factor: fpsSmoothing},
	}
	world := session.Config().World
	g.hud = NewHUD(world.FrameWidth, world.FrameHeight, g.requestRestart, g.toggleMusic)
	return g
}

func (g *Game) requestRestart() {
	g.restartPending = true
}

func (g *Game) toggleMusic() {
	g.drone.Toggle()
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	in := g.input.Sample()
	if g.restartPending {
		in.Restart = true
		g.restartPending = false
	}
	if g.input.MusicPressed {
		g.toggleMusic()
	}
	if g.input.CopySeedPressed {
		g.copyLevelSeed()
	}

	g.last = g.session.Step(in)
	g.hud.Update(g.last, g.fps.Add(ebiten.ActualFPS()), g.drone.On())
	return nil
}

// reloadPrefabs picks up prefab edits on disk. The new config applies on the
// next reset.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Changed()
	if len(changed) == 0 {
		return
	}
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		g.logger.Warn("prefab reload failed", "files", changed, "err", err)
		return
	}
	g.session.SetConfig(cfg)
	g.logger.Info("prefabs reloaded, applying on next reset", "files", changed)
}

func (g *Game) copyLevelSeed() {
	if !g.copySeed {
		return
	}
	seed := strconv.FormatInt(g.session.Seed(), 10)
	clipboard.Write(clipboard.FmtText, []byte(seed))
	g.logger.Info("seed copied", "seed", seed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	render.Draw(screen, g.session.DrawList())
	g.hud.Draw(screen)

	if g.session.Debug() {
		msg := fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f\nSeed: %d    Scroll: %.1f",
			g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), g.last.Seed, g.last.Scroll)
		ebitenutil.DebugPrintAt(screen, msg, 10, 40)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	world := g.session.Config().World
	return world.FrameWidth, world.FrameHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
