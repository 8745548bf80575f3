// Package levels generates and stores level layouts: a gap-free ground strip,
// floating platforms above it, and one patrolling hazard per floating
// platform.
package levels

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/jakecoffman/cp"
)

var (
	// ErrInvalidOverlap is returned when the ground tile step would not be
	// positive or would leave gaps between tiles.
	ErrInvalidOverlap = errors.New("levels: ground overlap must be in (0, tile width)")
	ErrInvalidParams  = errors.New("levels: invalid generator params")
)

// DefaultMaxAttempts is how many positions are drawn for a floating platform
// before its slot is skipped.
const DefaultMaxAttempts = 8

// Params controls generation. Lengths are in world units, y grows downward.
type Params struct {
	WorldLength float64 `yaml:"world_length" json:"world_length"`
	GroundY     float64 `yaml:"ground_y" json:"ground_y"`

	TileWidth  float64 `yaml:"tile_width" json:"tile_width"`
	TileHeight float64 `yaml:"tile_height" json:"tile_height"`
	Overlap    float64 `yaml:"overlap" json:"overlap"`
	StartX     float64 `yaml:"start_x" json:"start_x"`

	SmallCount  int     `yaml:"small_count" json:"small_count"`
	SmallWidth  float64 `yaml:"small_width" json:"small_width"`
	SmallHeight float64 `yaml:"small_height" json:"small_height"`
	MarginNear  float64 `yaml:"margin_near" json:"margin_near"`
	MarginFar   float64 `yaml:"margin_far" json:"margin_far"`
	MinHeight   float64 `yaml:"min_height" json:"min_height"`
	HeightRange float64 `yaml:"height_range" json:"height_range"`
	MaxAttempts int     `yaml:"max_attempts" json:"max_attempts"`

	HazardOffset float64 `yaml:"hazard_offset" json:"hazard_offset"`
	HazardWidth  float64 `yaml:"hazard_width" json:"hazard_width"`
	HazardHeight float64 `yaml:"hazard_height" json:"hazard_height"`
	PatrolBound  float64 `yaml:"patrol_bound" json:"patrol_bound"`
}

// DefaultParams returns the stock level: a 36000 unit run with 70 floating
// platforms.
func DefaultParams() Params {
	return Params{
		WorldLength:  36000,
		GroundY:      470,
		TileWidth:    580,
		TileHeight:   125,
		Overlap:      3,
		StartX:       -1,
		SmallCount:   70,
		SmallWidth:   291,
		SmallHeight:  227,
		MarginNear:   400,
		MarginFar:    400,
		MinHeight:    60,
		HeightRange:  180,
		MaxAttempts:  DefaultMaxAttempts,
		HazardOffset: 40,
		HazardWidth:  40,
		HazardHeight: 40,
		PatrolBound:  100,
	}
}

// Validate reports whether p can produce a level.
func (p Params) Validate() error {
	if p.TileWidth <= 0 || p.TileHeight <= 0 {
		return fmt.Errorf("%w: tile size %vx%v", ErrInvalidParams, p.TileWidth, p.TileHeight)
	}
	if p.Overlap <= 0 || p.Overlap >= p.TileWidth {
		return fmt.Errorf("%w: overlap %v, tile width %v", ErrInvalidOverlap, p.Overlap, p.TileWidth)
	}
	if p.WorldLength <= 0 {
		return fmt.Errorf("%w: world length %v", ErrInvalidParams, p.WorldLength)
	}
	if p.StartX > 0 {
		return fmt.Errorf("%w: start x %v leaves the world start uncovered", ErrInvalidParams, p.StartX)
	}
	if p.SmallCount < 0 {
		return fmt.Errorf("%w: small count %d", ErrInvalidParams, p.SmallCount)
	}
	if p.SmallCount > 0 {
		if p.SmallWidth <= 0 || p.SmallHeight <= 0 {
			return fmt.Errorf("%w: small platform size %vx%v", ErrInvalidParams, p.SmallWidth, p.SmallHeight)
		}
		if p.WorldLength-p.MarginNear-p.MarginFar < 0 {
			return fmt.Errorf("%w: margins %v+%v exceed world length %v", ErrInvalidParams, p.MarginNear, p.MarginFar, p.WorldLength)
		}
		if p.MinHeight < 0 || p.HeightRange < 0 {
			return fmt.Errorf("%w: height band %v+%v", ErrInvalidParams, p.MinHeight, p.HeightRange)
		}
		if p.PatrolBound < 0 || p.HazardWidth <= 0 || p.HazardHeight <= 0 {
			return fmt.Errorf("%w: hazard %vx%v bound %v", ErrInvalidParams, p.HazardWidth, p.HazardHeight, p.PatrolBound)
		}
		if p.HazardWidth > p.SmallWidth {
			return fmt.Errorf("%w: hazard width %v exceeds platform width %v", ErrInvalidParams, p.HazardWidth, p.SmallWidth)
		}
	}
	return nil
}

// Tile is a platform rectangle; X, Y is its top-left corner.
type Tile struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// BB returns the tile bounds, with B/T holding the top/bottom edges in y-down
// space.
func (t Tile) BB() cp.BB {
	return cp.BB{L: t.X, B: t.Y, R: t.X + t.W, T: t.Y + t.H}
}

// HazardSpawn places a hazard standing on a floating platform.
type HazardSpawn struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	AnchorX float64 `json:"anchor_x"`
	Bound   float64 `json:"bound"`
}

// Layout is a generated level. Every slice is sorted by x.
type Layout struct {
	Seed        int64         `json:"seed"`
	WorldLength float64       `json:"world_length"`
	GroundY     float64       `json:"ground_y"`
	Ground      []Tile        `json:"ground"`
	Floating    []Tile        `json:"floating"`
	Hazards     []HazardSpawn `json:"hazards"`
	// Skipped counts floating slots dropped because no free position was
	// found.
	Skipped int `json:"skipped,omitempty"`
}

// Generator draws layouts from a seeded source. The same seed and params
// always give the same layout.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds a layout. Floating platforms that would overlap one already
// placed are redrawn up to MaxAttempts times and then skipped.
func (g *Generator) Generate(p Params) (*Layout, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	layout := &Layout{
		Seed:        g.seed,
		WorldLength: p.WorldLength,
		GroundY:     p.GroundY,
		Ground:      groundTiles(p),
	}

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	span := p.WorldLength - p.MarginNear - p.MarginFar

	floating := make([]Tile, 0, p.SmallCount)
	for i := 0; i < p.SmallCount; i++ {
		placed := false
		for try := 0; try < attempts; try++ {
			x := p.MarginNear + g.rng.Float64()*span
			y := p.GroundY - (p.MinHeight + g.rng.Float64()*p.HeightRange)
			candidate := Tile{X: x, Y: y, W: p.SmallWidth, H: p.SmallHeight}
			if overlapsAny(candidate, floating) {
				continue
			}
			floating = append(floating, candidate)
			placed = true
			break
		}
		if !placed {
			layout.Skipped++
		}
	}

	slices.SortStableFunc(floating, func(a, b Tile) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	layout.Floating = floating

	layout.Hazards = make([]HazardSpawn, 0, len(floating))
	for _, t := range floating {
		// The patrol is centred on the platform and never walks off it.
		slack := (t.W - p.HazardWidth) / 2
		anchor := t.X + slack
		bound := math.Min(p.PatrolBound, slack)
		x := math.Max(anchor-bound, math.Min(anchor+bound, t.X+p.HazardOffset))
		layout.Hazards = append(layout.Hazards, HazardSpawn{
			X:       x,
			Y:       t.Y - p.HazardHeight,
			W:       p.HazardWidth,
			H:       p.HazardHeight,
			AnchorX: anchor,
			Bound:   bound,
		})
	}

	return layout, nil
}

func groundTiles(p Params) []Tile {
	step := p.TileWidth - p.Overlap
	tiles := make([]Tile, 0, int((p.WorldLength-p.StartX)/step)+1)
	for cursor := p.StartX; cursor < p.WorldLength; cursor += step {
		tiles = append(tiles, Tile{X: cursor, Y: p.GroundY, W: p.TileWidth, H: p.TileHeight})
	}
	return tiles
}

func overlapsAny(t Tile, placed []Tile) bool {
	bb := t.BB()
	for _, other := range placed {
		if bb.Intersects(other.BB()) {
			return true
		}
	}
	return false
}
