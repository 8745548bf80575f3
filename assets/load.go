package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

type loadOptions struct {
	logger   *log.Logger
	fallback bool
	limit    int
}

type Option func(*loadOptions)

func WithLogger(l *log.Logger) Option {
	return func(o *loadOptions) { o.logger = l }
}

// WithFallback substitutes a placeholder for any file that does not exist
// instead of failing the load.
func WithFallback(enabled bool) Option {
	return func(o *loadOptions) { o.fallback = enabled }
}

// WithLimit caps the number of files decoded at once.
func WithLimit(n int) Option {
	return func(o *loadOptions) { o.limit = n }
}

// Load resolves every manifest entry from fsys concurrently. It returns the
// first error, wrapped with the failing key; missing files wrap
// ErrMissingAsset.
func Load(ctx context.Context, fsys fs.FS, m Manifest, opts ...Option) (*Catalog, error) {
	o := loadOptions{limit: 4}
	for _, opt := range opts {
		opt(&o)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	resolved := make([]*Asset, len(m.Entries))
	g, ctx := errgroup.WithContext(ctx)
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}

	for i, entry := range m.Entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := loadEntry(fsys, entry)
			if errors.Is(err, ErrMissingAsset) && o.fallback {
				a, err = placeholderAsset(entry), nil
			}
			if err != nil {
				return fmt.Errorf("assets: %s: %w", entry.Key, err)
			}
			if o.logger != nil {
				o.logger.Debug("asset resolved", "key", a.Key, "kind", a.Kind, "w", a.Width, "h", a.Height, "placeholder", a.Placeholder)
			}
			resolved[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Info("assets loaded", "count", len(resolved))
	}
	return NewCatalog(resolved...), nil
}

func loadEntry(fsys fs.FS, e Entry) (*Asset, error) {
	if fsys == nil || e.Path == "" {
		return nil, fmt.Errorf("%w: no path", ErrMissingAsset)
	}
	data, err := fs.ReadFile(fsys, e.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, e.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", e.Path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.Path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", e.Path)
	}
	return &Asset{
		Key:    e.Key,
		Kind:   e.Kind,
		Frames: e.Frames,
		Width:  b.Dx(),
		Height: b.Dy(),
		Image:  img,
	}, nil
}
