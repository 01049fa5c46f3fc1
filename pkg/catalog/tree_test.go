// Tests for the lazy category tree: materialized paths, sibling order,
// rename, and cache-only lookup.
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshelf/partshelf/pkg/types"
)

func TestChildPathsAccumulate(t *testing.T) {
	f := newTestFactory(t, types.Config{})

	res, err := f.Tree().AddRoot("Resistors")
	require.NoError(t, err)
	assert.Equal(t, "Resistors", res.Cat.Path)

	smd, err := res.AddChild("SMD")
	require.NoError(t, err)
	assert.Equal(t, "Resistors SMD", smd.Cat.Path)

	size, err := smd.AddChild("0805")
	require.NoError(t, err)
	assert.Equal(t, "Resistors SMD 0805", size.Cat.Path)
	assert.Equal(t, smd, size.Parent())
}

func TestAddChildKeepsSiblingsOrdered(t *testing.T) {
	f := newTestFactory(t, types.Config{})
	res, err := f.Tree().AddRoot("Resistors")
	require.NoError(t, err)

	for _, name := range []string{"THT", "Arrays", "SMD"} {
		_, err := res.AddChild(name)
		require.NoError(t, err)
	}

	children, err := res.Children()
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, "Arrays", children[0].Cat.Name)
	assert.Equal(t, "SMD", children[1].Cat.Name)
	assert.Equal(t, "THT", children[2].Cat.Name)
}

func TestRenameDoesNotCascadePaths(t *testing.T) {
	f := newTestFactory(t, types.Config{})
	res, err := f.Tree().AddRoot("Resistors")
	require.NoError(t, err)
	smd, err := res.AddChild("SMD")
	require.NoError(t, err)

	require.NoError(t, res.Rename("Rs"))
	assert.Equal(t, "Rs", res.Cat.Name)
	// Paths stay frozen at their creation-time values.
	assert.Equal(t, "Resistors", res.Cat.Path)
	assert.Equal(t, "Resistors SMD", smd.Cat.Path)

	// The frozen descendant path survives a full reload.
	require.NoError(t, f.Tree().Reload())
	renamed, err := f.Tree().NodeByPath("Rs")
	require.NoError(t, err)
	children, err := renamed.Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "Resistors SMD", children[0].Cat.Path)
}

func TestRenameRejectsEmptyName(t *testing.T) {
	f := newTestFactory(t, types.Config{})
	res, err := f.Tree().AddRoot("Resistors")
	require.NoError(t, err)
	assert.ErrorIs(t, res.Rename(""), types.ErrEmptyName)
}

func TestFindByIDSearchesOnlyLoadedNodes(t *testing.T) {
	f := newTestFactory(t, types.Config{})
	tree := f.Tree()

	res, err := tree.AddRoot("Resistors")
	require.NoError(t, err)
	smd, err := res.AddChild("SMD")
	require.NoError(t, err)

	// Loaded while building, so both are visible.
	found, err := tree.FindByID(smd.Cat.ID)
	require.NoError(t, err)
	assert.Equal(t, smd, found)

	// After a reload only the root level is in the cache. The child row
	// still exists in the store, but an unloaded node is invisible here.
	require.NoError(t, tree.Reload())
	_, err = tree.FindByID(smd.Cat.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Walking the children makes it visible again.
	roots, err := tree.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	_, err = roots[0].Children()
	require.NoError(t, err)
	found, err = tree.FindByID(smd.Cat.ID)
	require.NoError(t, err)
	assert.Equal(t, smd.Cat.ID, found.Cat.ID)
}

func TestNodeByPath(t *testing.T) {
	f := newTestFactory(t, types.Config{})
	tree := f.Tree()

	res, err := tree.AddRoot("Resistors")
	require.NoError(t, err)
	_, err = res.AddChild("SMD")
	require.NoError(t, err)

	n, err := tree.NodeByPath("Resistors SMD")
	require.NoError(t, err)
	assert.Equal(t, "SMD", n.Cat.Name)

	_, err = tree.NodeByPath("Resistors THT")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = tree.NodeByPath("   ")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteSubtreeDropsCachedSibling(t *testing.T) {
	f := newTestFactory(t, types.Config{})
	tree := f.Tree()

	res, err := tree.AddRoot("Resistors")
	require.NoError(t, err)
	cap, err := tree.AddRoot("Capacitors")
	require.NoError(t, err)
	_, err = res.AddChild("SMD")
	require.NoError(t, err)

	require.NoError(t, tree.DeleteSubtree(res))

	roots, err := tree.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, cap, roots[0])

	// Gone from the store too, not just the cache.
	require.NoError(t, tree.Reload())
	roots, err = tree.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Capacitors", roots[0].Cat.Name)
}

func TestChildrenLoadOnce(t *testing.T) {
	f := newTestFactory(t, types.Config{})
	res, err := f.Tree().AddRoot("Resistors")
	require.NoError(t, err)
	assert.False(t, res.Loaded())

	require.NoError(t, f.Tree().Reload())
	roots, err := f.Tree().Roots()
	require.NoError(t, err)
	fresh := roots[0]
	assert.False(t, fresh.Loaded())

	has, err := fresh.HasChildren()
	require.NoError(t, err)
	assert.False(t, has)
	assert.True(t, fresh.Loaded())
}
