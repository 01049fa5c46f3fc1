package types

import "fmt"

// Part is one inventory record. The physical schema is fixed: the typed
// fields below mirror PartFields column for column. A part belongs to
// exactly one category (TypeID); moving it to another category is an
// in-place update, not a delete and recreate.
//
// Documents is the lazily loaded cache of attached document links; nil
// means not loaded yet. The catalog facade owns loading and mutation of
// the cache.
type Part struct {
	ID              int64
	TypeID          int64
	PartNum         string
	DeviceCode      string
	Value           float64
	Units           string
	ReducedVal      float64
	ReducedValUnits string
	MaxCurrent      string
	MaxVoltage      string
	MaxDissipation  string
	Description     string
	Package         string
	Present         bool
	Quantity        int64
	Price           float64
	Currency        string
	Shop            string
	LocalLocation   string
	Icon            string

	Documents []*Document

	dirty bool
}

// Dirty reports whether any field changed since load.
func (p *Part) Dirty() bool { return p.dirty }

// ClearDirty marks the part as persisted-clean.
func (p *Part) ClearDirty() { p.dirty = false }

// MarkDirty forces the part to be written on the next save.
func (p *Part) MarkDirty() { p.dirty = true }

// Set assigns value to the named field after checking it against the
// field's declared kind. Integer values are accepted into REAL fields;
// every other cross-kind assignment returns ErrTypeMismatch and leaves the
// part unchanged. Unknown field names return ErrUnknownField.
func (p *Part) Set(field string, value any) error {
	def, ok := FieldByName(field)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	switch def.Kind {
	case KindText:
		s, ok := value.(string)
		if !ok {
			return mismatch(field, def.Kind, value)
		}
		p.setText(field, s)
	case KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return mismatch(field, def.Kind, value)
		}
		p.Present = b
	case KindInteger:
		n, ok := asInt(value)
		if !ok {
			return mismatch(field, def.Kind, value)
		}
		p.setInteger(field, n)
	case KindReal:
		f, ok := asReal(value)
		if !ok {
			return mismatch(field, def.Kind, value)
		}
		p.setReal(field, f)
	}

	p.dirty = true
	return nil
}

// Get returns the current value of the named field, or ErrUnknownField.
func (p *Part) Get(field string) (any, error) {
	if _, ok := FieldByName(field); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return p.Fields()[field], nil
}

// Fields returns all physical field values keyed by column name.
func (p *Part) Fields() map[string]any {
	return map[string]any{
		"id":                p.ID,
		"type_id":           p.TypeID,
		"part_num":          p.PartNum,
		"device_code":       p.DeviceCode,
		"value":             p.Value,
		"units":             p.Units,
		"reduced_val":       p.ReducedVal,
		"reduced_val_units": p.ReducedValUnits,
		"max_current":       p.MaxCurrent,
		"max_voltage":       p.MaxVoltage,
		"max_dissipation":   p.MaxDissipation,
		"description":       p.Description,
		"package":           p.Package,
		"present":           p.Present,
		"quantity":          p.Quantity,
		"price":             p.Price,
		"currency":          p.Currency,
		"shop":              p.Shop,
		"local_location":    p.LocalLocation,
		"icon":              p.Icon,
	}
}

func (p *Part) setText(field, s string) {
	switch field {
	case "part_num":
		p.PartNum = s
	case "device_code":
		p.DeviceCode = s
	case "units":
		p.Units = s
	case "reduced_val_units":
		p.ReducedValUnits = s
	case "max_current":
		p.MaxCurrent = s
	case "max_voltage":
		p.MaxVoltage = s
	case "max_dissipation":
		p.MaxDissipation = s
	case "description":
		p.Description = s
	case "package":
		p.Package = s
	case "currency":
		p.Currency = s
	case "shop":
		p.Shop = s
	case "local_location":
		p.LocalLocation = s
	case "icon":
		p.Icon = s
	}
}

func (p *Part) setInteger(field string, n int64) {
	switch field {
	case "id":
		p.ID = n
	case "type_id":
		p.TypeID = n
	case "quantity":
		p.Quantity = n
	}
}

func (p *Part) setReal(field string, f float64) {
	switch field {
	case "value":
		p.Value = f
	case "reduced_val":
		p.ReducedVal = f
	case "price":
		p.Price = f
	}
}

func mismatch(field string, kind FieldKind, value any) error {
	return fmt.Errorf("%w: field %s is %s, got %T", ErrTypeMismatch, field, kind, value)
}

// asInt narrows Go integer types to int64.
func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// asReal accepts floats plus the integer widening case.
func asReal(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	if n, ok := asInt(value); ok {
		return float64(n), true
	}
	return 0, false
}
