package types

import "errors"

// Persistence gateway errors.
var (
	// ErrStatement wraps a driver failure for a malformed or rejected
	// SQL statement. Fatal to the current operation; never retried.
	ErrStatement = errors.New("statement failed")

	// ErrNotConnected is returned by gateway operations after Disconnect
	// or before Connect.
	ErrNotConnected = errors.New("database is not connected")
)

// Entity and lookup errors.
var (
	// ErrNotFound reports a category, part, header, or document lookup
	// miss. The caller decides the fallback.
	ErrNotFound = errors.New("not found")

	// ErrMissingPartNum reports a part insert without the identifying
	// part_num field. No row is written.
	ErrMissingPartNum = errors.New("field part_num is required")

	// ErrTypeMismatch reports a part field assignment whose value kind
	// disagrees with the field's declared kind. The part is unchanged.
	ErrTypeMismatch = errors.New("value type does not match field type")

	// ErrUnknownField reports a reference to a field name outside the
	// fixed physical schema.
	ErrUnknownField = errors.New("unknown part field")

	// ErrOwnershipMismatch reports a document operation against a part
	// that does not own the document.
	ErrOwnershipMismatch = errors.New("document is not owned by this part")

	// ErrEmptyName reports an empty category name on create or rename.
	ErrEmptyName = errors.New("category name must not be empty")
)
