package types

// Header is the per-category display overlay for one physical part field,
// identified by (TypeID, FieldName). A header exists conceptually for every
// category/field pair even when no row is persisted; an absent row is
// equivalent to all defaults. ID 0 marks a header that has never been
// persisted.
//
// Mutation goes through the Set methods so the header can track whether it
// needs to be written back. Reading the exported fields directly is fine.
type Header struct {
	ID        int64
	TypeID    int64
	FieldName string
	Label     string
	Align     string
	Hidden    bool
	Sort      bool
	Display   string
	Width     int64

	dirty bool
}

// NewHeader returns an all-defaults header for a category/field pair with
// the display label taken from the static field table. The header is clean;
// it is not written to the store until an attribute changes.
func NewHeader(typeID int64, field string) *Header {
	return &Header{
		TypeID:    typeID,
		FieldName: field,
		Display:   DefaultLabel(field),
	}
}

// Persisted reports whether the header has a row in the store.
func (h *Header) Persisted() bool { return h.ID != 0 }

// Dirty reports whether any attribute changed since load or creation.
func (h *Header) Dirty() bool { return h.dirty }

// ClearDirty marks the header as persisted-clean. Called by the save path
// after a successful write.
func (h *Header) ClearDirty() { h.dirty = false }

// SetLabel sets the label attribute and marks the header dirty.
func (h *Header) SetLabel(label string) {
	h.Label = label
	h.dirty = true
}

// SetAlign sets the alignment (AlignLeft, AlignRight, or AlignCenter) and
// marks the header dirty.
func (h *Header) SetAlign(align string) {
	h.Align = align
	h.dirty = true
}

// SetHidden sets the hidden flag and marks the header dirty.
func (h *Header) SetHidden(hidden bool) {
	h.Hidden = hidden
	h.dirty = true
}

// SetSort sets the sort flag and marks the header dirty.
func (h *Header) SetSort(sort bool) {
	h.Sort = sort
	h.dirty = true
}

// SetDisplay sets the display name and marks the header dirty.
func (h *Header) SetDisplay(display string) {
	h.Display = display
	h.dirty = true
}

// SetWidth sets the column width and marks the header dirty.
func (h *Header) SetWidth(width int64) {
	h.Width = width
	h.dirty = true
}
