package levels

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
)

// Load reads a layout written by Save.
func Load(fsys fs.FS, name string) (*Layout, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read layout: %w", err)
	}
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("levels: unmarshal layout %s: %w", name, err)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("levels: layout %s: %w", name, err)
	}
	return &layout, nil
}

// Save writes l as indented JSON.
func Save(w io.Writer, l *Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("levels: encode layout: %w", err)
	}
	return nil
}

// Validate checks that the ground covers [0, WorldLength) without gaps and
// that every hazard starts inside its patrol range.
func (l *Layout) Validate() error {
	if l.WorldLength <= 0 {
		return fmt.Errorf("%w: world length %v", ErrInvalidParams, l.WorldLength)
	}
	if len(l.Ground) == 0 {
		return fmt.Errorf("%w: no ground tiles", ErrInvalidParams)
	}
	covered := l.Ground[0].X
	if covered > 0 {
		return fmt.Errorf("%w: ground starts at %v", ErrInvalidParams, covered)
	}
	for _, t := range l.Ground {
		if t.X > covered {
			return fmt.Errorf("%w: ground gap at %v", ErrInvalidParams, covered)
		}
		covered = max(covered, t.X+t.W)
	}
	if covered < l.WorldLength {
		return fmt.Errorf("%w: ground ends at %v", ErrInvalidParams, covered)
	}
	for i, h := range l.Hazards {
		if h.X < h.AnchorX-h.Bound || h.X > h.AnchorX+h.Bound {
			return fmt.Errorf("%w: hazard %d outside its patrol", ErrInvalidParams, i)
		}
	}
	return nil
}
