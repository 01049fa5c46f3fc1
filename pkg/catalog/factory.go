package catalog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/partshelf/partshelf/internal/sqlite"
	"github.com/partshelf/partshelf/pkg/types"
)

// Factory is the coordination facade over one catalog store: tree lookups,
// recursive part aggregation by category subtree, header overlays, part
// and document lifecycle, and search. It is the sole coordination point;
// views sharing a store share one Factory rather than deriving their own.
type Factory struct {
	store  *sqlite.Store
	tree   *Tree
	widths *WidthSaver
	log    zerolog.Logger
}

// New builds a Factory over the store. cfg supplies the width-save quiet
// window; zero means the default.
func New(store *sqlite.Store, cfg types.Config, log zerolog.Logger) *Factory {
	cfg.ApplyDefaults()
	return &Factory{
		store:  store,
		tree:   NewTree(store),
		widths: NewWidthSaver(cfg.WidthSaveQuiet, log),
		log:    log.With().Str("component", "catalog").Logger(),
	}
}

// Tree returns the category tree.
func (f *Factory) Tree() *Tree { return f.tree }

// Categories

// RootCategories returns the root-level category nodes.
func (f *Factory) RootCategories() ([]*Node, error) {
	return f.tree.Roots()
}

// AddCategory creates a category under parent, or at root level when
// parent is nil.
func (f *Factory) AddCategory(parent *Node, name string) (*Node, error) {
	if parent == nil {
		return f.tree.AddRoot(name)
	}
	return parent.AddChild(name)
}

// CategoryByPath resolves a space-separated materialized path to a node.
func (f *Factory) CategoryByPath(path string) (*Node, error) {
	return f.tree.NodeByPath(path)
}

// CategoryByID looks a category up in the loaded cache, making sure the
// root level is loaded first. Deeper categories are visible only after
// their ancestors' children have been walked; see Tree.FindByID.
func (f *Factory) CategoryByID(id int64) (*Node, error) {
	if _, err := f.tree.Roots(); err != nil {
		return nil, err
	}
	return f.tree.FindByID(id)
}

// CreateCategoryPath walks the tree along the space-separated path,
// creating every missing segment, and returns the final node.
func (f *Factory) CreateCategoryPath(path string) (*Node, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	var node *Node
	level, err := f.tree.Roots()
	if err != nil {
		return nil, err
	}
	for _, segment := range segments {
		next := nodeByName(level, segment)
		if next == nil {
			if node == nil {
				next, err = f.tree.AddRoot(segment)
			} else {
				next, err = node.AddChild(segment)
			}
			if err != nil {
				return nil, err
			}
		}
		node = next
		level, err = node.Children()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// RenameCategory renames the node, leaving materialized paths frozen.
func (f *Factory) RenameCategory(n *Node, newName string) error {
	return n.Rename(newName)
}

// DeleteCategory removes the node's subtree, its parts, and their
// documents.
func (f *Factory) DeleteCategory(n *Node) error {
	return f.tree.DeleteSubtree(n)
}

// Headers

// HeadersFor returns the header overlay of one category, cached on the
// node.
func (f *Factory) HeadersFor(n *Node) (*HeaderSet, error) {
	return n.Headers()
}

// NotifyWidth records a debounced column width change; see WidthSaver.
func (f *Factory) NotifyWidth(set *HeaderSet, field string, width int64) error {
	return f.widths.Notify(set, field, width)
}

// FlushWidths persists any pending width saves immediately.
func (f *Factory) FlushWidths() error {
	return f.widths.Flush()
}

// Parts

// PartsUnder returns the parts of a category. With includeDescendants the
// category subtree is walked pre-order, one store query per visited node,
// concatenating the results; cost is linear in subtree size plus record
// count.
func (f *Factory) PartsUnder(n *Node, includeDescendants bool) (*PartList, error) {
	list := &PartList{}
	if err := f.collectParts(list, n, includeDescendants); err != nil {
		return nil, err
	}
	return list, nil
}

func (f *Factory) collectParts(list *PartList, n *Node, recurse bool) error {
	parts, err := f.store.LoadPartsByCategory(n.Cat.ID)
	if err != nil {
		return err
	}
	for _, p := range parts {
		list.Append(p)
	}
	if !recurse {
		return nil
	}

	children, err := n.Children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := f.collectParts(list, child, true); err != nil {
			return err
		}
	}
	return nil
}

// PartByID loads one part straight from the store.
func (f *Factory) PartByID(id int64) (*types.Part, error) {
	return f.store.LoadPart(id)
}

// CreatePart inserts a new part under the category from a field map and
// returns it fully loaded. The part_num field is required.
func (f *Factory) CreatePart(n *Node, fields map[string]any) (*types.Part, error) {
	for name, value := range fields {
		if err := checkFieldValue(name, value); err != nil {
			return nil, err
		}
	}

	id, err := f.store.InsertPart(n.Cat.ID, fields)
	if err != nil {
		return nil, err
	}
	f.log.Debug().Int64("id", id).Int64("type_id", n.Cat.ID).Msg("created part")
	return f.store.LoadPart(id)
}

// SavePart persists all fields of a modified part. A clean part is a
// no-op with zero writes.
func (f *Factory) SavePart(p *types.Part) error {
	if !p.Dirty() {
		return nil
	}
	if err := f.store.UpdatePart(p); err != nil {
		return err
	}
	p.ClearDirty()
	return nil
}

// DeletePart removes the part and, through the cascade policy, its
// documents.
func (f *Factory) DeletePart(p *types.Part) error {
	f.log.Debug().Int64("id", p.ID).Str("part_num", p.PartNum).Msg("deleting part")
	return f.store.DeletePart(p.ID)
}

// MovePart reassigns the part to another category in place. The part does
// not need reloading; its category reference is updated here.
func (f *Factory) MovePart(p *types.Part, newCategory *Node) error {
	if err := f.store.ReassignPartCategory(p.ID, newCategory.Cat.ID); err != nil {
		return err
	}
	p.TypeID = newCategory.Cat.ID
	return nil
}

// Search returns every part whose part_num, device_code, or description
// contains the substring, regardless of category. The category tree is
// not consulted.
func (f *Factory) Search(substring string) (*PartList, error) {
	parts, err := f.store.SearchParts(substring)
	if err != nil {
		return nil, err
	}
	return &PartList{parts: parts}, nil
}

// Documents

// DocumentsOf returns the part's attached documents, loading the cached
// list on first access.
func (f *Factory) DocumentsOf(p *types.Part) ([]*types.Document, error) {
	if p.Documents == nil {
		docs, err := f.store.LoadDocuments(p.ID)
		if err != nil {
			return nil, err
		}
		if docs == nil {
			docs = []*types.Document{}
		}
		p.Documents = docs
	}
	return p.Documents, nil
}

// AttachDocument links a document to the part and appends it to the cached
// list. With the DocDefault hint the kind is inferred from the URI's
// extension.
func (f *Factory) AttachDocument(p *types.Part, uri string, kindHint types.DocKind) (*types.Document, error) {
	if _, err := f.DocumentsOf(p); err != nil {
		return nil, err
	}

	kind := kindHint
	if kind == types.DocDefault {
		kind = types.KindForURI(uri)
	}
	doc := &types.Document{PartID: p.ID, Kind: kind, URI: uri}
	if err := f.store.InsertDocument(doc); err != nil {
		return nil, err
	}
	p.Documents = append(p.Documents, doc)
	return doc, nil
}

// DetachDocument removes a document from its owning part. A document
// whose owning part id differs fails with ErrOwnershipMismatch and
// nothing is deleted.
func (f *Factory) DetachDocument(p *types.Part, doc *types.Document) error {
	if doc.PartID != p.ID {
		return fmt.Errorf("document %d belongs to part %d, not %d: %w",
			doc.ID, doc.PartID, p.ID, types.ErrOwnershipMismatch)
	}
	if err := f.store.DeleteDocument(doc.ID); err != nil {
		return err
	}
	if p.Documents != nil {
		for i, d := range p.Documents {
			if d.ID == doc.ID {
				p.Documents = append(p.Documents[:i], p.Documents[i+1:]...)
				break
			}
		}
	}
	return nil
}

// checkFieldValue validates a field map entry against the declared kind
// before anything is written, so a bad row is rejected whole.
func checkFieldValue(name string, value any) error {
	probe := types.Part{}
	return probe.Set(name, value)
}

func splitPath(path string) ([]string, error) {
	segments := strings.Fields(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("path %q: %w", path, types.ErrNotFound)
	}
	return segments, nil
}
