package types

// FieldKind is the declared storage kind of a physical part field.
type FieldKind string

// Field kinds. Assignment to a field is rejected unless the supplied value
// matches the declared kind; the only widening accepted is integer values
// into KindReal fields.
const (
	KindInteger FieldKind = "INTEGER"
	KindReal    FieldKind = "REAL"
	KindText    FieldKind = "TEXT"
	KindBoolean FieldKind = "BOOLEAN"
)

// Header alignment values.
const (
	AlignLeft   = "LEFT"
	AlignRight  = "RIGHT"
	AlignCenter = "CENTER"
)

// FieldDef describes one field of the fixed physical part schema: its
// column name, declared kind, and the static default display label used
// when a header row has never been persisted for it.
type FieldDef struct {
	Name  string
	Kind  FieldKind
	Label string
}

// PartFields is the fixed physical part schema in column order. The schema
// never changes at runtime; per-category presentation differences live in
// the header overlay, not here.
var PartFields = []FieldDef{
	{Name: "id", Kind: KindInteger, Label: "id"},
	{Name: "type_id", Kind: KindInteger, Label: "type_id"},
	{Name: "part_num", Kind: KindText, Label: "PartNum"},
	{Name: "device_code", Kind: KindText, Label: "Code"},
	{Name: "value", Kind: KindReal, Label: "Nominal"},
	{Name: "units", Kind: KindText, Label: "Unit"},
	{Name: "reduced_val", Kind: KindReal, Label: "Reduced Value"},
	{Name: "reduced_val_units", Kind: KindText, Label: "Reduced Unit"},
	{Name: "max_current", Kind: KindText, Label: "Current"},
	{Name: "max_voltage", Kind: KindText, Label: "Voltage"},
	{Name: "max_dissipation", Kind: KindText, Label: "Dissipation"},
	{Name: "description", Kind: KindText, Label: "Description"},
	{Name: "package", Kind: KindText, Label: "Package"},
	{Name: "present", Kind: KindBoolean, Label: "Is Present"},
	{Name: "quantity", Kind: KindInteger, Label: "Quantity"},
	{Name: "price", Kind: KindReal, Label: "Price"},
	{Name: "currency", Kind: KindText, Label: "Currency"},
	{Name: "shop", Kind: KindText, Label: "Shop link"},
	{Name: "local_location", Kind: KindText, Label: "Location"},
	{Name: "icon", Kind: KindText, Label: "Icon Link"},
}

// fieldsByName indexes PartFields for lookup.
var fieldsByName = func() map[string]FieldDef {
	m := make(map[string]FieldDef, len(PartFields))
	for _, f := range PartFields {
		m[f.Name] = f
	}
	return m
}()

// FieldByName returns the schema definition for a field name.
func FieldByName(name string) (FieldDef, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// PartFieldNames returns all physical field names in column order.
func PartFieldNames() []string {
	names := make([]string, len(PartFields))
	for i, f := range PartFields {
		names[i] = f.Name
	}
	return names
}

// DefaultLabel returns the static display label for a field, or the field
// name itself when the name is not part of the schema.
func DefaultLabel(field string) string {
	if f, ok := fieldsByName[field]; ok {
		return f.Label
	}
	return field
}
