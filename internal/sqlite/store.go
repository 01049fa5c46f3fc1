package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/partshelf/partshelf/pkg/types"
)

// Store exposes row-level CRUD for the four physical tables plus the
// free-text part search. It is stateless beyond the open connection and
// hydrates rows straight into the entity types; all caching lives in the
// catalog layer above.
type Store struct {
	conn *Connector
	log  zerolog.Logger
}

// NewStore wraps an already-constructed gateway.
func NewStore(conn *Connector, log zerolog.Logger) *Store {
	return &Store{conn: conn, log: log.With().Str("component", "store").Logger()}
}

// Conn returns the underlying gateway.
func (s *Store) Conn() *Connector { return s.conn }

// EnsureSchema creates the four tables and their indexes when missing.
func (s *Store) EnsureSchema() error {
	for _, ddl := range schemaDDL() {
		if _, err := s.conn.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// partColumns is the comma-separated physical column list in schema order.
var partColumns = strings.Join(types.PartFieldNames(), ", ")

// Categories

// LoadCategories returns the direct children of parentID (0 for root
// level), ordered ascending by name.
func (s *Store) LoadCategories(parentID int64) ([]*types.Category, error) {
	rows, err := s.conn.Query(
		"SELECT id, name, path, parent_id FROM types WHERE parent_id = ? ORDER BY name;",
		parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading categories of %d: %w", parentID, err)
	}
	defer rows.Close()

	var cats []*types.Category
	for rows.Next() {
		var c types.Category
		var path sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &path, &c.ParentID); err != nil {
			return nil, fmt.Errorf("hydrating category: %w", err)
		}
		c.Path = path.String
		cats = append(cats, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return cats, nil
}

// InsertCategory persists a new category and assigns its generated ID.
func (s *Store) InsertCategory(c *types.Category) error {
	if c.Name == "" {
		return types.ErrEmptyName
	}
	id, err := s.conn.Exec(
		"INSERT INTO types (name, path, parent_id) VALUES (?, ?, ?);",
		c.Name, c.Path, c.ParentID,
	)
	if err != nil {
		return fmt.Errorf("inserting category %q: %w", c.Name, err)
	}
	c.ID = id
	return nil
}

// UpdateCategory renames a category. The path argument is written only
// when non-empty; passing "" leaves the stored path untouched, which is
// how rename keeps the materialized path frozen.
func (s *Store) UpdateCategory(id int64, name, path string) error {
	if name == "" {
		return types.ErrEmptyName
	}
	var err error
	if path != "" {
		_, err = s.conn.Exec("UPDATE types SET name = ?, path = ? WHERE id = ?;", name, path, id)
	} else {
		_, err = s.conn.Exec("UPDATE types SET name = ? WHERE id = ?;", name, id)
	}
	if err != nil {
		return fmt.Errorf("updating category %d: %w", id, err)
	}
	return nil
}

// DeleteCategory removes a category row. Parts under it and their
// documents go with it through the cascade policy. Descendant category
// rows are deleted by the tree walking the subtree, not here.
func (s *Store) DeleteCategory(id int64) error {
	if _, err := s.conn.Exec("DELETE FROM types WHERE id = ?;", id); err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return nil
}

// Headers

// LoadHeaders returns the persisted header rows for one category, ordered
// by field name.
func (s *Store) LoadHeaders(typeID int64) ([]*types.Header, error) {
	rows, err := s.conn.Query(
		"SELECT id, type_id, field_name, label, align, hidden, sort, display, width"+
			" FROM headers WHERE type_id = ? ORDER BY field_name;",
		typeID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading headers of type %d: %w", typeID, err)
	}
	defer rows.Close()

	var hdrs []*types.Header
	for rows.Next() {
		h, err := hydrateHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating header: %w", err)
		}
		hdrs = append(hdrs, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating headers: %w", err)
	}
	return hdrs, nil
}

func hydrateHeader(rows *sql.Rows) (*types.Header, error) {
	var h types.Header
	var label, align, display sql.NullString
	var hidden, sortable sql.NullBool
	var width sql.NullInt64
	if err := rows.Scan(&h.ID, &h.TypeID, &h.FieldName, &label, &align, &hidden, &sortable, &display, &width); err != nil {
		return nil, err
	}
	h.Label = label.String
	h.Align = align.String
	h.Hidden = hidden.Bool
	h.Sort = sortable.Bool
	h.Display = display.String
	h.Width = width.Int64
	return &h, nil
}

// InsertHeader persists a header row for the first time and assigns its
// generated ID.
func (s *Store) InsertHeader(h *types.Header) error {
	id, err := s.conn.Exec(
		"INSERT INTO headers (type_id, field_name, label, align, hidden, sort, display, width)"+
			" VALUES (?, ?, ?, ?, ?, ?, ?, ?);",
		h.TypeID, h.FieldName, h.Label, h.Align, h.Hidden, h.Sort, h.Display, h.Width,
	)
	if err != nil {
		return fmt.Errorf("inserting header %s/%d: %w", h.FieldName, h.TypeID, err)
	}
	h.ID = id
	return nil
}

// UpdateHeader writes all attributes of an already-persisted header row.
func (s *Store) UpdateHeader(h *types.Header) error {
	_, err := s.conn.Exec(
		"UPDATE headers SET type_id = ?, field_name = ?, label = ?, align = ?, hidden = ?,"+
			" sort = ?, display = ?, width = ? WHERE id = ?;",
		h.TypeID, h.FieldName, h.Label, h.Align, h.Hidden, h.Sort, h.Display, h.Width, h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating header %d: %w", h.ID, err)
	}
	return nil
}

// Parts

// LoadPart returns one part by id, or ErrNotFound.
func (s *Store) LoadPart(id int64) (*types.Part, error) {
	row, err := s.conn.QueryRow(
		"SELECT "+partColumns+" FROM parts WHERE id = ?;", id,
	)
	if err != nil {
		return nil, err
	}
	p, err := hydratePart(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("part %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("loading part %d: %w", id, err)
	}
	return p, nil
}

// LoadPartsByCategory returns all parts directly under one category,
// ordered by the part_num identifier field.
func (s *Store) LoadPartsByCategory(typeID int64) ([]*types.Part, error) {
	rows, err := s.conn.Query(
		"SELECT "+partColumns+" FROM parts WHERE type_id = ? ORDER BY part_num;", typeID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading parts of type %d: %w", typeID, err)
	}
	return collectParts(rows)
}

// SearchParts returns every part whose part_num, device_code, or
// description contains the substring. Matching follows SQLite LIKE
// semantics: case-insensitive for ASCII letters, case-sensitive beyond.
func (s *Store) SearchParts(substring string) ([]*types.Part, error) {
	pattern := "%" + substring + "%"
	rows, err := s.conn.Query(
		"SELECT "+partColumns+" FROM parts WHERE part_num LIKE ? OR device_code LIKE ? OR description LIKE ?;",
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching parts for %q: %w", substring, err)
	}
	return collectParts(rows)
}

func collectParts(rows *sql.Rows) ([]*types.Part, error) {
	defer rows.Close()
	var parts []*types.Part
	for rows.Next() {
		p, err := hydratePart(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating part: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parts: %w", err)
	}
	return parts, nil
}

// hydratePart scans one row in schema column order, tolerating NULLs in
// every domain field.
func hydratePart(scan func(...any) error) (*types.Part, error) {
	var p types.Part
	var partNum, deviceCode, units, reducedUnits, maxCurrent, maxVoltage sql.NullString
	var maxDissipation, description, pkg, currency, shop, localLocation, icon sql.NullString
	var value, reducedVal, price sql.NullFloat64
	var present sql.NullBool
	var quantity sql.NullInt64

	err := scan(
		&p.ID, &p.TypeID, &partNum, &deviceCode, &value, &units, &reducedVal, &reducedUnits,
		&maxCurrent, &maxVoltage, &maxDissipation, &description, &pkg, &present, &quantity,
		&price, &currency, &shop, &localLocation, &icon,
	)
	if err != nil {
		return nil, err
	}

	p.PartNum = partNum.String
	p.DeviceCode = deviceCode.String
	p.Value = value.Float64
	p.Units = units.String
	p.ReducedVal = reducedVal.Float64
	p.ReducedValUnits = reducedUnits.String
	p.MaxCurrent = maxCurrent.String
	p.MaxVoltage = maxVoltage.String
	p.MaxDissipation = maxDissipation.String
	p.Description = description.String
	p.Package = pkg.String
	p.Present = present.Bool
	p.Quantity = quantity.Int64
	p.Price = price.Float64
	p.Currency = currency.String
	p.Shop = shop.String
	p.LocalLocation = localLocation.String
	p.Icon = icon.String
	return &p, nil
}

// InsertPart writes a new part under the given category from a field map
// and returns the generated id. The identifying part_num field is
// required; without it nothing is written and ErrMissingPartNum is
// returned. Columns are taken from the schema registry, so keys outside
// the physical schema are silently skipped.
func (s *Store) InsertPart(typeID int64, fields map[string]any) (int64, error) {
	if _, ok := fields["part_num"]; !ok {
		return 0, types.ErrMissingPartNum
	}

	names := []string{"type_id"}
	values := []any{typeID}
	for _, name := range types.PartFieldNames() {
		if name == "id" || name == "type_id" {
			continue
		}
		v, ok := fields[name]
		if !ok {
			continue
		}
		names = append(names, name)
		values = append(values, v)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	id, err := s.conn.Exec(
		"INSERT INTO parts ("+strings.Join(names, ", ")+") VALUES ("+placeholders+");",
		values...,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting part: %w", err)
	}
	return id, nil
}

// UpdatePart writes all fields of an existing part.
func (s *Store) UpdatePart(p *types.Part) error {
	fields := p.Fields()
	var assigns []string
	var values []any
	for _, name := range types.PartFieldNames() {
		if name == "id" {
			continue
		}
		assigns = append(assigns, name+" = ?")
		values = append(values, fields[name])
	}
	values = append(values, p.ID)

	_, err := s.conn.Exec(
		"UPDATE parts SET "+strings.Join(assigns, ", ")+" WHERE id = ?;",
		values...,
	)
	if err != nil {
		return fmt.Errorf("updating part %d: %w", p.ID, err)
	}
	return nil
}

// DeletePart removes one part row; its documents cascade.
func (s *Store) DeletePart(id int64) error {
	if _, err := s.conn.Exec("DELETE FROM parts WHERE id = ?;", id); err != nil {
		return fmt.Errorf("deleting part %d: %w", id, err)
	}
	return nil
}

// ReassignPartCategory moves one part to another category in place.
func (s *Store) ReassignPartCategory(partID, newTypeID int64) error {
	if _, err := s.conn.Exec("UPDATE parts SET type_id = ? WHERE id = ?;", newTypeID, partID); err != nil {
		return fmt.Errorf("moving part %d to type %d: %w", partID, newTypeID, err)
	}
	return nil
}

// Documents

// LoadDocuments returns the document links attached to one part,
// unordered.
func (s *Store) LoadDocuments(partID int64) ([]*types.Document, error) {
	rows, err := s.conn.Query(
		"SELECT id, part_id, kind, uri FROM documents WHERE part_id = ?;", partID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading documents of part %d: %w", partID, err)
	}
	defer rows.Close()

	var docs []*types.Document
	for rows.Next() {
		var d types.Document
		var uri sql.NullString
		if err := rows.Scan(&d.ID, &d.PartID, &d.Kind, &uri); err != nil {
			return nil, fmt.Errorf("hydrating document: %w", err)
		}
		d.URI = uri.String
		docs = append(docs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// InsertDocument persists a new document link and assigns its generated ID.
func (s *Store) InsertDocument(d *types.Document) error {
	id, err := s.conn.Exec(
		"INSERT INTO documents (part_id, kind, uri) VALUES (?, ?, ?);",
		d.PartID, d.Kind, d.URI,
	)
	if err != nil {
		return fmt.Errorf("inserting document for part %d: %w", d.PartID, err)
	}
	d.ID = id
	return nil
}

// DeleteDocument removes one document link.
func (s *Store) DeleteDocument(id int64) error {
	if _, err := s.conn.Exec("DELETE FROM documents WHERE id = ?;", id); err != nil {
		return fmt.Errorf("deleting document %d: %w", id, err)
	}
	return nil
}
