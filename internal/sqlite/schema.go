package sqlite

import (
	"fmt"
	"strings"

	"github.com/partshelf/partshelf/pkg/types"
)

// Physical table names.
const (
	TypesTable     = "types"
	HeadersTable   = "headers"
	PartsTable     = "parts"
	DocumentsTable = "documents"
)

// Schema DDL. Deleting a category cascades to its parts, and deleting a
// part cascades to its documents; the store relies on the referential
// policy here rather than application-level cleanup.
const (
	createTypes = `CREATE TABLE IF NOT EXISTS types (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    path TEXT,
    parent_id INTEGER DEFAULT 0
);`

	createHeaders = `CREATE TABLE IF NOT EXISTS headers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type_id INTEGER NOT NULL,
    field_name TEXT NOT NULL,
    label TEXT,
    align TEXT,
    hidden BOOLEAN,
    sort BOOLEAN,
    display TEXT,
    width INTEGER,
    CONSTRAINT fk_header_types FOREIGN KEY (type_id) REFERENCES types(id) ON DELETE CASCADE
);`

	createDocuments = `CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    part_id INTEGER NOT NULL,
    kind INTEGER DEFAULT 6,
    uri TEXT,
    CONSTRAINT fk_document_parts FOREIGN KEY (part_id) REFERENCES parts(id) ON DELETE CASCADE
);`
)

// createParts builds the parts DDL from the field registry so the table
// stays column-for-column aligned with types.PartFields.
func createParts() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS parts (\n")
	for _, f := range types.PartFields {
		if f.Name == "id" {
			b.WriteString("    id INTEGER PRIMARY KEY AUTOINCREMENT,\n")
			continue
		}
		decl := string(f.Kind)
		if f.Name == "type_id" {
			decl += " NOT NULL"
		}
		fmt.Fprintf(&b, "    %s %s,\n", f.Name, decl)
	}
	b.WriteString("    CONSTRAINT fk_part_types FOREIGN KEY (type_id) REFERENCES types(id) ON DELETE CASCADE\n);")
	return b.String()
}

// Index DDL for the common lookup paths.
const (
	idxTypesParent   = `CREATE INDEX IF NOT EXISTS idx_types_parent ON types(parent_id);`
	idxHeadersType   = `CREATE INDEX IF NOT EXISTS idx_headers_type ON headers(type_id);`
	idxPartsType     = `CREATE INDEX IF NOT EXISTS idx_parts_type ON parts(type_id);`
	idxDocumentsPart = `CREATE INDEX IF NOT EXISTS idx_documents_part ON documents(part_id);`
)

// schemaDDL returns all statements in dependency order.
func schemaDDL() []string {
	return []string{
		createTypes,
		createHeaders,
		createParts(),
		createDocuments,
		idxTypesParent,
		idxHeadersType,
		idxPartsType,
		idxDocumentsPart,
	}
}
