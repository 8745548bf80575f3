// Package assets resolves the images a level needs: sprite sheets for the
// actor, platform tiles and parallax backgrounds. Images are decoded into
// plain image.Image values; turning them into GPU textures is the renderer's
// job.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
)

// ErrMissingAsset is returned when a manifest entry cannot be resolved.
var ErrMissingAsset = errors.New("assets: missing asset")

type Kind string

const (
	KindSheet Kind = "sheet"
	KindTile  Kind = "tile"
	KindImage Kind = "image"
)

// Entry describes one asset. Width, Height and Color are only used when a
// placeholder is synthesised for it.
type Entry struct {
	Key    string
	Kind   Kind
	Path   string
	Frames int
	Width  int
	Height int
	Color  color.NRGBA
}

// Manifest lists every asset a session needs.
type Manifest struct {
	Entries []Entry
}

func (m Manifest) validate() error {
	seen := make(map[string]struct{}, len(m.Entries))
	for _, e := range m.Entries {
		if e.Key == "" {
			return fmt.Errorf("assets: entry with path %q has no key", e.Path)
		}
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("assets: duplicate key %q", e.Key)
		}
		seen[e.Key] = struct{}{}
		if e.Kind == KindSheet && e.Frames <= 0 {
			return fmt.Errorf("assets: sheet %q needs a positive frame count", e.Key)
		}
	}
	return nil
}

// Asset is a resolved entry. Width and Height are the real image size.
type Asset struct {
	Key         string
	Kind        Kind
	Frames      int
	Width       int
	Height      int
	Image       image.Image
	Placeholder bool
}

// FrameWidth is the width of one sheet frame, possibly fractional.
func (a *Asset) FrameWidth() float64 {
	if a.Frames <= 0 {
		return float64(a.Width)
	}
	return float64(a.Width) / float64(a.Frames)
}

// Catalog holds resolved assets by key.
type Catalog struct {
	assets map[string]*Asset
}

func NewCatalog(assets ...*Asset) *Catalog {
	c := &Catalog{assets: make(map[string]*Asset, len(assets))}
	for _, a := range assets {
		c.Put(a)
	}
	return c
}

func (c *Catalog) Put(a *Asset) {
	if a == nil || a.Key == "" {
		return
	}
	if c.assets == nil {
		c.assets = make(map[string]*Asset)
	}
	c.assets[a.Key] = a
}

func (c *Catalog) Get(key string) (*Asset, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.assets[key]
	return a, ok
}

// Size returns the asset dimensions as world units.
func (c *Catalog) Size(key string) (w, h float64, ok bool) {
	a, ok := c.Get(key)
	if !ok {
		return 0, 0, false
	}
	return float64(a.Width), float64(a.Height), true
}

// Keys lists the catalog keys in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.assets))
	for k := range c.assets {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.assets)
}
