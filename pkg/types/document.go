package types

import (
	"path/filepath"
	"strings"
)

// DocKind classifies an attached document link. The numeric codes are the
// persisted values and must stay stable.
type DocKind int64

// Document kinds.
const (
	DocURL     DocKind = 1
	DocPDF     DocKind = 2
	DocJPG     DocKind = 3
	DocPNG     DocKind = 4
	DocText    DocKind = 5
	DocDefault DocKind = 6
)

// Document is a reference attached to a part: a local file path or URL
// classified by kind. Its lifecycle is bound to the owning part; deleting
// the part (or its category subtree) deletes the document row.
type Document struct {
	ID     int64
	PartID int64
	Kind   DocKind
	URI    string
}

// Ext returns the URI's file extension without the leading dot.
func (d *Document) Ext() string {
	return strings.TrimPrefix(filepath.Ext(d.URI), ".")
}

// kindByExt maps lowercase file extensions to document kinds.
var kindByExt = map[string]DocKind{
	"pdf":  DocPDF,
	"jpg":  DocJPG,
	"jpeg": DocJPG,
	"png":  DocPNG,
	"txt":  DocText,
	"text": DocText,
	"htm":  DocURL,
	"html": DocURL,
}

// KindForURI infers a document kind from the URI's file extension,
// returning DocDefault for unrecognized extensions.
func KindForURI(uri string) DocKind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(uri), "."))
	if k, ok := kindByExt[ext]; ok {
		return k
	}
	return DocDefault
}
