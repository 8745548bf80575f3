package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/milk9111/scroller/assets"
	"github.com/milk9111/scroller/ecs/render"
	"github.com/milk9111/scroller/game"
	"github.com/milk9111/scroller/levels"
	"github.com/milk9111/scroller/prefabs"
	"github.com/milk9111/scroller/sound"
)

var (
	flagAssets      string
	flagPlaceholder bool
	flagLayout      string
	flagMonitor     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a generated level",
	Long: `Play a generated level. This is also what running scroller with no
command does.

Art is read from the --assets directory using the paths in
prefabs/assets.yaml. Without --assets every sprite is a coloured
placeholder of the declared size.

Examples:
  scroller
  scroller play --seed 42
  scroller play --assets ./art --placeholder
  scroller play --layout level.json`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func bindPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding the sprite sheets and tiles (empty = placeholders)")
	cmd.Flags().BoolVar(&flagPlaceholder, "placeholder", false, "Use a placeholder for any asset missing from --assets")
	cmd.Flags().StringVar(&flagLayout, "layout", "", "Play a saved layout instead of generating levels")
	cmd.Flags().BoolVar(&flagMonitor, "monitor", false, "Use the first monitor instead of the primary one")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(flagDebug)

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	var layout *levels.Layout
	if flagLayout != "" {
		layout, err = levels.Load(os.DirFS(filepath.Dir(flagLayout)), filepath.Base(flagLayout))
		if err != nil {
			return err
		}
		logger.Info("playing saved layout", "path", flagLayout, "seed", layout.Seed)
	}

	seed, fixed := seedFlag(cmd)
	session, err := game.NewSession(cfg, game.Options{
		Seed:      seed,
		FixedSeed: fixed,
		Layout:    layout,
		Catalog:   catalog,
		Logger:    logger,
		Debug:     flagDebug,
	})
	if err != nil {
		return err
	}
	logger.Info("level ready", "seed", session.Seed(), "fixed", fixed || layout != nil)

	if err := render.RegisterCatalog(catalog); err != nil {
		return err
	}
	defer render.ResetImages()

	drone, err := sound.NewDrone(audio.NewContext(cfg.Music.SampleRate), cfg.Music, logger)
	if err != nil {
		logger.Warn("music disabled", "err", err)
		drone = nil
	} else if cfg.Music.Autoplay {
		drone.Toggle()
	}
	defer drone.Close()

	var watcher *prefabs.Watcher
	if info, err := os.Stat(prefabs.DiskDir); err == nil && info.IsDir() {
		watcher, err = prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			logger.Debug("watching prefabs", "dir", prefabs.DiskDir)
		}
	}

	copySeed := clipboard.Init() == nil
	if !copySeed {
		logger.Debug("clipboard unavailable, seed copy disabled")
	}

	if flagMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(cfg.World.FrameWidth), int(cfg.World.FrameHeight))
	ebiten.SetWindowTitle("scroller")

	g := NewGame(session, drone, watcher, logger, copySeed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// loadCatalog resolves the asset manifest. With no asset directory every
// entry is a placeholder.
func loadCatalog(ctx context.Context, cfg *prefabs.Config, logger *log.Logger) (*assets.Catalog, error) {
	manifest := cfg.Assets.Manifest()
	if flagAssets == "" {
		logger.Info("no asset directory, using placeholders", "entries", len(manifest.Entries))
		return assets.Placeholder(manifest), nil
	}

	var fsys fs.FS = os.DirFS(flagAssets)
	logger.Info("loading assets", "dir", flagAssets, "entries", len(manifest.Entries))
	start := time.Now()
	catalog, err := assets.Load(ctx, fsys, manifest,
		assets.WithLogger(logger),
		assets.WithFallback(flagPlaceholder),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("assets loaded", "count", catalog.Len(), "took", time.Since(start).Round(time.Millisecond))
	return catalog, nil
}
