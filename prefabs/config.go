package prefabs

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/scroller/levels"
)

// PlayerPrefab is the component-map prefab the actor is built from.
const PlayerPrefab = "player.yaml"

// Config is every tuning file merged into one value. It is rebuilt when a
// prefab changes on disk and takes effect on the next reset.
type Config struct {
	World    WorldSpec
	Hazard   HazardSpec
	Camera   CameraSpec
	Parallax ParallaxSpec
	Assets   AssetsSpec
	Music    MusicSpec
	// Player is the actor's component map from PlayerPrefab.
	Player EntityBuildSpec
}

// DefaultConfig holds the values used for anything a prefab leaves out.
func DefaultConfig() Config {
	return Config{
		World: WorldSpec{
			FrameWidth:   1024,
			FrameHeight:  576,
			Gravity:      1.2,
			WinFraction:  0.75,
			ScoreDivisor: 10,
			GroundTile:   "platform",
			SmallTile:    "platform_small",
			Level:        levels.DefaultParams(),
		},
		Hazard: HazardSpec{
			Width:       40,
			Height:      40,
			Offset:      40,
			PatrolBound: 100,
			Speed:       1,
			Color:       &YAMLColor{Color: color.NRGBA{R: 0xff, A: 0xff}},
			RenderLayer: RenderLayerSpec{Index: 30},
		},
		Camera: CameraSpec{LeftBound: 100, RightBound: 400},
		Music: MusicSpec{
			Waveform:   "sawtooth",
			Frequency:  110,
			Gain:       0.03,
			SampleRate: 44100,
		},
	}
}

// LoadConfig reads every prefab over DefaultConfig.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	files := []struct {
		name string
		into any
	}{
		{"world.yaml", &cfg.World},
		{"hazard.yaml", &cfg.Hazard},
		{"camera.yaml", &cfg.Camera},
		{"parallax.yaml", &cfg.Parallax},
		{"assets.yaml", &cfg.Assets},
		{"music.yaml", &cfg.Music},
	}
	for _, f := range files {
		if err := loadInto(f.name, f.into); err != nil {
			return nil, err
		}
	}
	player, err := LoadEntityBuildSpec(PlayerPrefab)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", PlayerPrefab, err)
	}
	cfg.Player = player
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadInto decodes over the values already in out, so missing keys keep
// their defaults.
func loadInto(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

func (c *Config) Validate() error {
	w := c.World
	if w.FrameWidth <= 0 || w.FrameHeight <= 0 {
		return fmt.Errorf("prefabs: world: frame size %vx%v", w.FrameWidth, w.FrameHeight)
	}
	if w.WinFraction <= 0 || w.WinFraction > 1 {
		return fmt.Errorf("prefabs: world: win fraction %v not in (0, 1]", w.WinFraction)
	}
	if w.ScoreDivisor <= 0 {
		return fmt.Errorf("prefabs: world: score divisor %v", w.ScoreDivisor)
	}
	if c.Camera.LeftBound < 0 || c.Camera.RightBound <= c.Camera.LeftBound {
		return fmt.Errorf("prefabs: camera: dead band [%v, %v]", c.Camera.LeftBound, c.Camera.RightBound)
	}
	for _, l := range c.Parallax.Layers {
		if l.Ratio <= 0 || l.Ratio > 1 {
			return fmt.Errorf("prefabs: parallax: layer %q ratio %v not in (0, 1]", l.Image, l.Ratio)
		}
	}
	if err := c.LevelParams().Validate(); err != nil {
		return fmt.Errorf("prefabs: world: %w", err)
	}
	for _, name := range []string{"player", "body"} {
		if _, ok := c.Player.Components[name]; !ok {
			return fmt.Errorf("prefabs: player: missing %q component", name)
		}
	}
	return nil
}

// LevelParams returns the generator params with the hazard geometry from
// hazard.yaml.
func (c *Config) LevelParams() levels.Params {
	p := c.World.Level
	p.HazardWidth = c.Hazard.Width
	p.HazardHeight = c.Hazard.Height
	p.HazardOffset = c.Hazard.Offset
	p.PatrolBound = c.Hazard.PatrolBound
	return p
}

// WinDistance is the scroll distance that wins the run.
func (c *Config) WinDistance() float64 {
	return c.World.WinFraction * c.World.Level.WorldLength
}
