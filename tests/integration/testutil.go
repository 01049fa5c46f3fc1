// Package integration provides end-to-end tests for the partshelf catalog:
// a real SQLite file, the full store and facade stack, and reopen cycles.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/partshelf/partshelf/internal/sqlite"
	"github.com/partshelf/partshelf/pkg/catalog"
	"github.com/partshelf/partshelf/pkg/types"
)

// CatalogEnv is an isolated catalog over its own database file. The file
// outlives Close, so a test can reopen the same catalog to verify
// persistence across connections.
type CatalogEnv struct {
	t      *testing.T
	DBPath string

	conn    *sqlite.Connector
	Factory *catalog.Factory
}

// NewCatalogEnv creates a fresh catalog in a temp directory.
func NewCatalogEnv(t *testing.T) *CatalogEnv {
	t.Helper()
	env := &CatalogEnv{
		t:      t,
		DBPath: filepath.Join(t.TempDir(), "catalog.db"),
	}
	env.open()
	t.Cleanup(env.Close)
	return env
}

func (e *CatalogEnv) open() {
	e.t.Helper()
	log := zerolog.Nop()
	e.conn = sqlite.NewConnector(e.DBPath, log)
	require.NoError(e.t, e.conn.Connect())

	store := sqlite.NewStore(e.conn, log)
	require.NoError(e.t, store.EnsureSchema())
	e.Factory = catalog.New(store, types.Config{}, log)
}

// Reopen flushes pending saves, closes the connection, and opens a new
// stack over the same database file.
func (e *CatalogEnv) Reopen() {
	e.t.Helper()
	require.NoError(e.t, e.Factory.FlushWidths())
	require.NoError(e.t, e.conn.Disconnect())
	e.open()
}

// Close disconnects; the database file stays on disk.
func (e *CatalogEnv) Close() {
	_ = e.conn.Disconnect()
}

// MustCategory creates the full category path, failing the test on error.
func (e *CatalogEnv) MustCategory(path string) *catalog.Node {
	e.t.Helper()
	n, err := e.Factory.CreateCategoryPath(path)
	require.NoError(e.t, err)
	return n
}

// MustPart creates a part under the category, failing the test on error.
func (e *CatalogEnv) MustPart(n *catalog.Node, fields map[string]any) *types.Part {
	e.t.Helper()
	p, err := e.Factory.CreatePart(n, fields)
	require.NoError(e.t, err)
	return p
}
