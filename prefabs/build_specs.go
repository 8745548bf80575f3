package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab listing components by registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Facing    string  `yaml:"facing"`
}

// BodyComponentSpec places the body by its top-left corner. A zero size is
// taken from the sprite image.
type BodyComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteComponentSpec struct {
	Image string `yaml:"image"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

// AnimationComponentSpec maps clip ids to sheet keys. Frame counts and sheet
// sizes come from the asset catalog.
type AnimationComponentSpec struct {
	Rate    int               `yaml:"rate"`
	Current string            `yaml:"current"`
	Clips   map[string]string `yaml:"clips"`
}
