package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/scroller/assets"
	"github.com/milk9111/scroller/levels"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec is world.yaml: frame size, physics constants, the win line and
// the level generator parameters.
type WorldSpec struct {
	FrameWidth   float64       `yaml:"frame_width"`
	FrameHeight  float64       `yaml:"frame_height"`
	Gravity      float64       `yaml:"gravity"`
	WinFraction  float64       `yaml:"win_fraction"`
	ScoreDivisor float64       `yaml:"score_divisor"`
	GroundTile   string        `yaml:"ground_tile"`
	SmallTile    string        `yaml:"small_tile"`
	Level        levels.Params `yaml:"level"`
}

// HazardSpec is hazard.yaml.
type HazardSpec struct {
	Width       float64         `yaml:"width"`
	Height      float64         `yaml:"height"`
	// Offset is the start point from the platform's left edge, clamped into
	// the patrol. PatrolBound is capped so the patrol fits on the platform.
	Offset      float64         `yaml:"offset"`
	PatrolBound float64         `yaml:"patrol_bound"`
	Speed       float64         `yaml:"speed"`
	Color       *YAMLColor      `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

// CameraSpec is camera.yaml: the on-screen dead band.
type CameraSpec struct {
	LeftBound  float64 `yaml:"left_bound"`
	RightBound float64 `yaml:"right_bound"`
}

type ParallaxLayerSpec struct {
	Image string  `yaml:"image"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Ratio float64 `yaml:"ratio"`
}

// ParallaxSpec is parallax.yaml, back to front.
type ParallaxSpec struct {
	Layers      []ParallaxLayerSpec `yaml:"layers"`
	RenderLayer RenderLayerSpec     `yaml:"render_layer"`
}

type AssetSpec struct {
	Key    string     `yaml:"key"`
	Path   string     `yaml:"path"`
	Frames int        `yaml:"frames"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

// AssetsSpec is assets.yaml. Width, height and colour describe the
// placeholder drawn when the file is absent.
type AssetsSpec struct {
	Sheets []AssetSpec `yaml:"sheets"`
	Tiles  []AssetSpec `yaml:"tiles"`
	Images []AssetSpec `yaml:"images"`
}

// Manifest converts the spec into an asset manifest.
func (s AssetsSpec) Manifest() assets.Manifest {
	var m assets.Manifest
	add := func(kind assets.Kind, specs []AssetSpec) {
		for _, a := range specs {
			m.Entries = append(m.Entries, assets.Entry{
				Key:    a.Key,
				Kind:   kind,
				Path:   a.Path,
				Frames: a.Frames,
				Width:  a.Width,
				Height: a.Height,
				Color:  a.Color.NRGBA(),
			})
		}
	}
	add(assets.KindSheet, s.Sheets)
	add(assets.KindTile, s.Tiles)
	add(assets.KindImage, s.Images)
	return m
}

// MusicSpec is music.yaml: the background drone.
type MusicSpec struct {
	Waveform   string  `yaml:"waveform"`
	Frequency  float64 `yaml:"frequency"`
	Gain       float64 `yaml:"gain"`
	SampleRate int     `yaml:"sample_rate"`
	Autoplay   bool    `yaml:"autoplay"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the colour, or the zero colour when c is nil or unset.
func (c *YAMLColor) NRGBA() color.NRGBA {
	if c == nil || c.Color == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
