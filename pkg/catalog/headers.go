package catalog

import (
	"fmt"

	"github.com/partshelf/partshelf/internal/sqlite"
	"github.com/partshelf/partshelf/pkg/types"
)

// HeaderSet is the header overlay of one category: the persisted rows plus
// any defaults materialized on lookup. The set exclusively owns its Header
// objects. Lookup is two-tier: the in-memory map of persisted and
// materialized headers first, else a fresh all-defaults header built from
// the static field table. Materializing a default never writes to the
// store; only Save does, and only for dirty headers.
type HeaderSet struct {
	typeID  int64
	store   *sqlite.Store
	headers map[string]*types.Header
}

// loadHeaderSet fetches the persisted header rows for one category.
func loadHeaderSet(store *sqlite.Store, typeID int64) (*HeaderSet, error) {
	rows, err := store.LoadHeaders(typeID)
	if err != nil {
		return nil, err
	}

	set := &HeaderSet{
		typeID:  typeID,
		store:   store,
		headers: make(map[string]*types.Header, len(rows)),
	}
	for _, h := range rows {
		set.headers[h.FieldName] = h
	}
	return set, nil
}

// TypeID returns the owning category id.
func (s *HeaderSet) TypeID() int64 { return s.typeID }

// Header returns the header for one physical field. When no row was ever
// persisted, an all-defaults header is materialized with the static
// display label, kept in the set, and returned without touching the
// store. Field names outside the physical schema fail with
// ErrUnknownField.
func (s *HeaderSet) Header(field string) (*types.Header, error) {
	if h, ok := s.headers[field]; ok {
		return h, nil
	}
	if _, ok := types.FieldByName(field); !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownField, field)
	}

	h := types.NewHeader(s.typeID, field)
	s.headers[field] = h
	return h, nil
}

// All returns the materialized headers in physical field order, followed
// by any persisted rows for fields outside the current schema.
func (s *HeaderSet) All() []*types.Header {
	out := make([]*types.Header, 0, len(s.headers))
	seen := make(map[string]bool, len(s.headers))
	for _, name := range types.PartFieldNames() {
		if h, ok := s.headers[name]; ok {
			out = append(out, h)
			seen[name] = true
		}
	}
	for name, h := range s.headers {
		if !seen[name] {
			out = append(out, h)
		}
	}
	return out
}

// Len returns the number of materialized headers.
func (s *HeaderSet) Len() int { return len(s.headers) }

// Save persists every dirty header in the set: insert for headers that
// never had a row, update otherwise. Headers that were only ever read are
// never written. Performs zero writes when nothing changed.
func (s *HeaderSet) Save() error {
	for _, h := range s.headers {
		if err := s.saveOne(h); err != nil {
			return err
		}
	}
	return nil
}

// saveOne writes a single header if dirty and clears its dirty mark.
func (s *HeaderSet) saveOne(h *types.Header) error {
	if !h.Dirty() {
		return nil
	}
	var err error
	if h.Persisted() {
		err = s.store.UpdateHeader(h)
	} else {
		err = s.store.InsertHeader(h)
	}
	if err != nil {
		return err
	}
	h.ClearDirty()
	return nil
}
