// Package game owns the session: the world, the frame pipeline, level seeds
// and resets. It has no rendering or input device code.
package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/milk9111/scroller/assets"
	"github.com/milk9111/scroller/ecs"
	"github.com/milk9111/scroller/ecs/component"
	"github.com/milk9111/scroller/ecs/entity"
	"github.com/milk9111/scroller/ecs/system"
	"github.com/milk9111/scroller/levels"
	"github.com/milk9111/scroller/prefabs"
)

type Options struct {
	// Seed is the level seed when FixedSeed is set; otherwise it seeds the
	// sequence fresh level seeds are drawn from.
	Seed      int64
	FixedSeed bool
	// Layout, when set, is replayed on every reset instead of generating.
	Layout  *levels.Layout
	Catalog *assets.Catalog
	Logger  *log.Logger
	Debug   bool
}

// Session is the running game. A fresh ECS world is built on start and on
// every reset; nothing survives a reset except the seed policy and config.
type Session struct {
	cfg        *prefabs.Config
	pendingCfg *prefabs.Config
	catalog    *assets.Catalog
	logger     *log.Logger

	fixedSeed   bool
	fixedLayout *levels.Layout
	seeds       *rand.Rand
	debug       bool

	seed     int64
	layout   *levels.Layout
	world    *ecs.World
	pipeline *Pipeline
	frame    uint64
}

func NewSession(cfg *prefabs.Config, opts Options) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game: config is nil")
	}
	if opts.Catalog == nil {
		opts.Catalog = assets.Placeholder(cfg.Assets.Manifest())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		cfg:         cfg,
		catalog:     opts.Catalog,
		logger:      logger,
		fixedSeed:   opts.FixedSeed,
		fixedLayout: opts.Layout,
		seeds:       rand.New(rand.NewSource(opts.Seed)),
		debug:       opts.Debug,
		seed:        opts.Seed,
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Step advances the session by one frame.
func (s *Session) Step(in InputSnapshot) Signals {
	if in.Restart {
		s.logger.Info("restart requested", "frame", s.frame)
		s.reset()
		sig := s.signals()
		sig.Restarted = true
		return sig
	}

	s.frame++
	s.pipeline.Input.Set(system.InputState{
		MoveLeft:  in.MoveLeft,
		MoveRight: in.MoveRight,
		Jump:      in.Jump,
	})
	s.pipeline.Update(s.world, lossRaised)

	sig := s.signals()
	for _, evt := range s.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventWon:
			sig.Won = true
			s.logger.Info("level won", "seed", s.seed, "score", sig.Score, "frame", s.frame)
		case ecs.EventHazardContact:
			sig.Lost, sig.LossReason = true, LossHazard
		case ecs.EventFellOut:
			sig.Lost, sig.LossReason = true, LossFell
		}
	}

	if sig.Lost {
		s.logger.Info("run lost", "reason", sig.LossReason, "score", sig.Score, "seed", s.seed)
		s.reset()
		lost, reason := sig.Lost, sig.LossReason
		sig = s.signals()
		sig.Lost, sig.LossReason, sig.Restarted = lost, reason, true
	}
	return sig
}

// Reset rebuilds the world now, applying any pending config.
func (s *Session) Reset() {
	s.reset()
}

func (s *Session) reset() {
	if s.pendingCfg != nil {
		prev := s.cfg
		s.cfg, s.pendingCfg = s.pendingCfg, nil
		err := s.rebuild()
		if err == nil {
			s.logger.Info("config applied")
			return
		}
		s.logger.Error("new config rejected, keeping the previous one", "err", err)
		s.cfg = prev
	}
	if err := s.rebuild(); err != nil {
		// The config built a world before, so only a broken fixed layout
		// gets here; keep playing the current world.
		s.logger.Error("reset failed", "err", err)
	}
}

// rebuild draws the next seed, builds a world from it and swaps it in.
func (s *Session) rebuild() error {
	seed := s.seed
	if !s.fixedSeed {
		seed = s.seeds.Int63()
	}

	layout := s.fixedLayout
	if layout == nil {
		var err error
		layout, err = levels.NewGenerator(seed).Generate(s.levelParams())
		if err != nil {
			return fmt.Errorf("game: generate level: %w", err)
		}
	} else {
		seed = layout.Seed
	}

	world, err := entity.BuildWorld(s.cfg, layout, s.catalog)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	pipeline := NewPipeline(s.cfg, s.cfg.World.WinFraction*layout.WorldLength)
	pipeline.DrawList.Debug = s.debug
	pipeline.DrawList.Update(world)

	s.seed, s.layout, s.world, s.pipeline = seed, layout, world, pipeline
	s.logger.Debug("level built",
		"seed", seed,
		"ground", len(layout.Ground),
		"floating", len(layout.Floating),
		"hazards", len(layout.Hazards),
		"skipped", layout.Skipped,
	)
	return nil
}

// levelParams takes tile sizes from the catalog so platforms match their art.
func (s *Session) levelParams() levels.Params {
	p := s.cfg.LevelParams()
	if w, h, ok := s.catalog.Size(s.cfg.World.GroundTile); ok {
		p.TileWidth, p.TileHeight = w, h
	}
	if w, h, ok := s.catalog.Size(s.cfg.World.SmallTile); ok {
		p.SmallWidth, p.SmallHeight = w, h
	}
	return p
}

func (s *Session) signals() Signals {
	sig := Signals{State: StatePlaying, Seed: s.seed}
	if e, ok := ecs.First(s.world, component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(s.world, e, component.CameraComponent.Kind())
		sig.Scroll = cam.ScrollDistance
		sig.Score = Score(cam.ScrollDistance, s.cfg.World.ScoreDivisor)
	}
	if e, ok := ecs.First(s.world, component.TerminalComponent.Kind()); ok {
		term, _ := ecs.Get(s.world, e, component.TerminalComponent.Kind())
		if term.State == component.TerminalWon {
			sig.State = StateWon
		}
	}
	return sig
}

// Score is the scroll distance in score units, never negative.
func Score(scroll, divisor float64) int {
	if divisor <= 0 {
		divisor = 1
	}
	return int(math.Max(0, math.Floor(scroll/divisor)))
}

// SetConfig queues cfg for the next reset.
func (s *Session) SetConfig(cfg *prefabs.Config) {
	if cfg != nil {
		s.pendingCfg = cfg
	}
}

func (s *Session) SetDebug(on bool) {
	s.debug = on
	s.pipeline.DrawList.Debug = on
}

func (s *Session) Debug() bool { return s.debug }

// DrawList returns the frame's draw calls in screen space, back to front.
func (s *Session) DrawList() []component.Drawable {
	return s.pipeline.DrawList.Drawables()
}

func (s *Session) Seed() int64 { return s.seed }

func (s *Session) Layout() *levels.Layout { return s.layout }

func (s *Session) World() *ecs.World { return s.world }

func (s *Session) Config() *prefabs.Config { return s.cfg }

func (s *Session) Frame() uint64 { return s.frame }
