package catalog

import (
	"fmt"

	"github.com/partshelf/partshelf/pkg/types"
)

// PartList is an ordered collection of parts with id and part-number
// lookup. Order is whatever the producing query returned; aggregation
// across a subtree concatenates per-category, part_num-ordered chunks.
type PartList struct {
	parts []*types.Part
}

// Len returns the number of parts.
func (l *PartList) Len() int { return len(l.parts) }

// At returns the part at position i.
func (l *PartList) At(i int) *types.Part { return l.parts[i] }

// All returns the underlying slice for iteration.
func (l *PartList) All() []*types.Part { return l.parts }

// Append adds a part to the end of the list.
func (l *PartList) Append(p *types.Part) { l.parts = append(l.parts, p) }

// ByID returns the part with the given id, or ErrNotFound.
func (l *PartList) ByID(id int64) (*types.Part, error) {
	for _, p := range l.parts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("part %d: %w", id, types.ErrNotFound)
}

// ByPartNum returns the first part with the given identifier, or
// ErrNotFound.
func (l *PartList) ByPartNum(num string) (*types.Part, error) {
	for _, p := range l.parts {
		if p.PartNum == num {
			return p, nil
		}
	}
	return nil, fmt.Errorf("part %q: %w", num, types.ErrNotFound)
}
