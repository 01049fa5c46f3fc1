package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/partshelf/partshelf/internal/sqlite"
	"github.com/partshelf/partshelf/pkg/types"
)

// Node is one category in the in-memory tree. It exclusively owns its
// cached child list and header set. A node's children go through exactly
// one transition, unloaded to loaded; there is no stale state. After an
// external mutation the caller reloads explicitly.
type Node struct {
	Cat *types.Category

	store    *sqlite.Store
	parent   *Node
	children []*Node
	loaded   bool
	headers  *HeaderSet
}

// Parent returns the parent node, nil for root-level categories.
func (n *Node) Parent() *Node { return n.parent }

// Loaded reports whether the child list has been fetched.
func (n *Node) Loaded() bool { return n.loaded }

// Children returns the cached child list, loading it from the store on
// first access. The list is ordered ascending by name.
func (n *Node) Children() ([]*Node, error) {
	if !n.loaded {
		cats, err := n.store.LoadCategories(n.Cat.ID)
		if err != nil {
			return nil, err
		}
		n.children = wrapNodes(n.store, n, cats)
		n.loaded = true
	}
	return n.children, nil
}

// HasChildren reports whether the node has any child categories, loading
// them when needed.
func (n *Node) HasChildren() (bool, error) {
	children, err := n.Children()
	if err != nil {
		return false, err
	}
	return len(children) > 0, nil
}

// AddChild creates a child category under this node. The child's path is
// materialized from this node's path at creation time and never
// recomputed. The new node is spliced into the cached sibling list at its
// sorted position; the rest of the list is not re-sorted.
func (n *Node) AddChild(name string) (*Node, error) {
	if _, err := n.Children(); err != nil {
		return nil, err
	}

	cat := &types.Category{
		Name:     name,
		Path:     types.ChildPath(n.Cat.Path, name),
		ParentID: n.Cat.ID,
	}
	if err := n.store.InsertCategory(cat); err != nil {
		return nil, err
	}

	child := &Node{Cat: cat, store: n.store, parent: n}
	n.children = insertSorted(n.children, child)
	return child, nil
}

// Rename updates the category's display name. The materialized path of
// this node and of every descendant stays frozen at its creation-time
// value; only the name changes. Sibling order is not re-established
// automatically; reload the parent to restore it.
func (n *Node) Rename(newName string) error {
	if newName == "" {
		return types.ErrEmptyName
	}
	if err := n.store.UpdateCategory(n.Cat.ID, newName, n.Cat.Path); err != nil {
		return err
	}
	n.Cat.Name = newName
	return nil
}

// Reload drops the cached child list and fetches it again.
func (n *Node) Reload() error {
	n.children = nil
	n.loaded = false
	n.headers = nil
	_, err := n.Children()
	return err
}

// Headers returns the header overlay for this category, loading it on
// first access.
func (n *Node) Headers() (*HeaderSet, error) {
	if n.headers == nil {
		set, err := loadHeaderSet(n.store, n.Cat.ID)
		if err != nil {
			return nil, err
		}
		n.headers = set
	}
	return n.headers, nil
}

// RefreshHeaders discards the cached overlay and loads it again.
func (n *Node) RefreshHeaders() (*HeaderSet, error) {
	n.headers = nil
	return n.Headers()
}

// AdoptPart moves an existing part into this category by id.
func (n *Node) AdoptPart(partID int64) error {
	return n.store.ReassignPartCategory(partID, n.Cat.ID)
}

// findLoaded searches this node and its already-loaded descendants for a
// category id. It never triggers a load.
func (n *Node) findLoaded(id int64) *Node {
	if n.Cat.ID == id {
		return n
	}
	if !n.loaded {
		return nil
	}
	for _, child := range n.children {
		if found := child.findLoaded(id); found != nil {
			return found
		}
	}
	return nil
}

// deleteRecursive removes the node's subtree from the store, children
// first. Parts and documents under each category go with it through the
// store's cascade policy.
func (n *Node) deleteRecursive() error {
	children, err := n.Children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := child.deleteRecursive(); err != nil {
			return err
		}
	}
	return n.store.DeleteCategory(n.Cat.ID)
}

// Tree is the in-memory category hierarchy over one store. The root level
// is lazy like every other level.
type Tree struct {
	store  *sqlite.Store
	roots  []*Node
	loaded bool
}

// NewTree returns an unloaded tree over the store.
func NewTree(store *sqlite.Store) *Tree {
	return &Tree{store: store}
}

// Roots returns the root-level categories, loading them on first access.
func (t *Tree) Roots() ([]*Node, error) {
	if !t.loaded {
		cats, err := t.store.LoadCategories(0)
		if err != nil {
			return nil, err
		}
		t.roots = wrapNodes(t.store, nil, cats)
		t.loaded = true
	}
	return t.roots, nil
}

// Reload drops the entire cached tree and fetches the root level again.
func (t *Tree) Reload() error {
	t.roots = nil
	t.loaded = false
	_, err := t.Roots()
	return err
}

// AddRoot creates a root-level category whose path is its own name.
func (t *Tree) AddRoot(name string) (*Node, error) {
	if name == "" {
		return nil, types.ErrEmptyName
	}
	if _, err := t.Roots(); err != nil {
		return nil, err
	}

	cat := &types.Category{Name: name, Path: name, ParentID: 0}
	if err := t.store.InsertCategory(cat); err != nil {
		return nil, err
	}

	node := &Node{Cat: cat, store: t.store}
	t.roots = insertSorted(t.roots, node)
	return node, nil
}

// FindByID searches the already-loaded cache depth-first for a category
// id. Categories never fetched into the cache are invisible here: the
// lookup returns ErrNotFound even when the row exists in the store. The
// caller must make sure the relevant subtree is loaded first, typically by
// walking Children or calling Reload.
func (t *Tree) FindByID(id int64) (*Node, error) {
	if t.loaded {
		for _, root := range t.roots {
			if found := root.findLoaded(id); found != nil {
				return found, nil
			}
		}
	}
	return nil, fmt.Errorf("category %d: %w", id, types.ErrNotFound)
}

// NodeByPath walks the tree level by level following the space-separated
// materialized path, matching each segment by exact name. Levels are
// loaded lazily during the walk. Any missing segment fails with
// ErrNotFound.
func (t *Tree) NodeByPath(path string) (*Node, error) {
	segments := strings.Fields(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("path %q: %w", path, types.ErrNotFound)
	}

	level, err := t.Roots()
	if err != nil {
		return nil, err
	}

	var node *Node
	for _, segment := range segments {
		node = nodeByName(level, segment)
		if node == nil {
			return nil, fmt.Errorf("path segment %q: %w", segment, types.ErrNotFound)
		}
		level, err = node.Children()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// DeleteSubtree removes the node's whole subtree from the store and drops
// the node from its parent's cached sibling list.
func (t *Tree) DeleteSubtree(n *Node) error {
	if err := n.deleteRecursive(); err != nil {
		return err
	}
	if n.parent != nil {
		n.parent.children = removeNode(n.parent.children, n)
	} else if t.loaded {
		t.roots = removeNode(t.roots, n)
	}
	return nil
}

// wrapNodes builds tree nodes around freshly loaded category rows. The
// store returns them name-ordered already.
func wrapNodes(store *sqlite.Store, parent *Node, cats []*types.Category) []*Node {
	nodes := make([]*Node, len(cats))
	for i, cat := range cats {
		nodes[i] = &Node{Cat: cat, store: store, parent: parent}
	}
	return nodes
}

// insertSorted splices a node into a name-ordered sibling list at its
// sorted position without re-sorting the list.
func insertSorted(siblings []*Node, node *Node) []*Node {
	i := sort.Search(len(siblings), func(i int) bool {
		return siblings[i].Cat.Name >= node.Cat.Name
	})
	siblings = append(siblings, nil)
	copy(siblings[i+1:], siblings[i:])
	siblings[i] = node
	return siblings
}

func nodeByName(level []*Node, name string) *Node {
	for _, n := range level {
		if n.Cat.Name == name {
			return n
		}
	}
	return nil
}

func removeNode(siblings []*Node, node *Node) []*Node {
	for i, n := range siblings {
		if n == node {
			return append(siblings[:i], siblings[i+1:]...)
		}
	}
	return siblings
}
