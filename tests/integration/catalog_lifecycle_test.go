// End-to-end lifecycle tests: categories, parts, headers, and documents
// surviving a full close-and-reopen of the database file.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshelf/partshelf/pkg/types"
)

func TestCatalogSurvivesReopen(t *testing.T) {
	env := NewCatalogEnv(t)

	smd := env.MustCategory("Resistors SMD")
	env.MustPart(smd, map[string]any{
		"part_num": "R100",
		"value":    100.0,
		"units":    "Ohm",
		"quantity": 25,
		"present":  true,
	})

	env.Reopen()

	node, err := env.Factory.CategoryByPath("Resistors SMD")
	require.NoError(t, err)
	assert.Equal(t, "Resistors SMD", node.Cat.Path)

	parts, err := env.Factory.PartsUnder(node, false)
	require.NoError(t, err)
	require.Equal(t, 1, parts.Len())
	p := parts.At(0)
	assert.Equal(t, "R100", p.PartNum)
	assert.Equal(t, 100.0, p.Value)
	assert.Equal(t, int64(25), p.Quantity)
	assert.True(t, p.Present)
}

func TestRenamedCategoryKeepsFrozenPathAcrossReopen(t *testing.T) {
	env := NewCatalogEnv(t)

	leaf := env.MustCategory("Capacitors Electrolytic")
	root, err := env.Factory.CategoryByPath("Capacitors")
	require.NoError(t, err)
	require.NoError(t, env.Factory.RenameCategory(root, "Caps"))

	env.Reopen()

	// The rename stuck, the descendant's stored path did not move.
	renamed, err := env.Factory.CategoryByPath("Caps")
	require.NoError(t, err)
	assert.Equal(t, "Capacitors", renamed.Cat.Path)

	children, err := renamed.Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, leaf.Cat.Path, children[0].Cat.Path)
	assert.Equal(t, "Capacitors Electrolytic", children[0].Cat.Path)
}

func TestHeaderCustomizationsSurviveReopen(t *testing.T) {
	env := NewCatalogEnv(t)

	res := env.MustCategory("Resistors")
	hs, err := env.Factory.HeadersFor(res)
	require.NoError(t, err)
	h, err := hs.Header("value")
	require.NoError(t, err)
	h.SetDisplay("Resistance")
	h.SetAlign(types.AlignRight)
	require.NoError(t, hs.Save())
	require.NoError(t, env.Factory.NotifyWidth(hs, "part_num", 140))

	env.Reopen()

	node, err := env.Factory.CategoryByPath("Resistors")
	require.NoError(t, err)
	fresh, err := env.Factory.HeadersFor(node)
	require.NoError(t, err)

	value, err := fresh.Header("value")
	require.NoError(t, err)
	assert.Equal(t, "Resistance", value.Display)
	assert.Equal(t, types.AlignRight, value.Align)

	partNum, err := fresh.Header("part_num")
	require.NoError(t, err)
	assert.True(t, partNum.Persisted())
	assert.Equal(t, int64(140), partNum.Width)

	// Untouched fields still come back as fresh defaults.
	units, err := fresh.Header("units")
	require.NoError(t, err)
	assert.False(t, units.Persisted())
	assert.Equal(t, "Unit", units.Display)
}

func TestDocumentsSurviveReopenAndCascade(t *testing.T) {
	env := NewCatalogEnv(t)

	reg := env.MustCategory("Regulators")
	p := env.MustPart(reg, map[string]any{"part_num": "LM317"})
	_, err := env.Factory.AttachDocument(p, "lm317.pdf", types.DocDefault)
	require.NoError(t, err)
	_, err = env.Factory.AttachDocument(p, "https://example.com/lm317", types.DocURL)
	require.NoError(t, err)

	env.Reopen()

	part, err := env.Factory.PartByID(p.ID)
	require.NoError(t, err)
	docs, err := env.Factory.DocumentsOf(part)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	kinds := []types.DocKind{docs[0].Kind, docs[1].Kind}
	assert.Contains(t, kinds, types.DocPDF)
	assert.Contains(t, kinds, types.DocURL)

	// Deleting the category takes the part and its documents with it.
	node, err := env.Factory.CategoryByPath("Regulators")
	require.NoError(t, err)
	require.NoError(t, env.Factory.DeleteCategory(node))

	env.Reopen()
	_, err = env.Factory.PartByID(p.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSearchSpansWholeCatalog(t *testing.T) {
	env := NewCatalogEnv(t)

	res := env.MustCategory("Resistors")
	reg := env.MustCategory("Regulators")
	env.MustPart(res, map[string]any{"part_num": "R-LM317-SHUNT"})
	env.MustPart(reg, map[string]any{"part_num": "LM317T", "description": "adjustable regulator"})
	env.MustPart(reg, map[string]any{"part_num": "LM7805"})

	env.Reopen()

	list, err := env.Factory.Search("LM317")
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())

	list, err = env.Factory.Search("regulator")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())
}
