// Unit tests for the persistence gateway.
package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshelf/partshelf/pkg/types"
)

func newTestConnector(t *testing.T) *Connector {
	t.Helper()
	conn := NewConnector(filepath.Join(t.TempDir(), "catalog.db"), zerolog.Nop())
	require.NoError(t, conn.Connect())
	t.Cleanup(func() { _ = conn.Disconnect() })
	return conn
}

func TestConnectIsIdempotent(t *testing.T) {
	conn := newTestConnector(t)
	require.True(t, conn.Connected())

	// A second Connect on an open connector is a no-op.
	require.NoError(t, conn.Connect())
	assert.True(t, conn.Connected())
}

func TestOperationsAfterDisconnect(t *testing.T) {
	conn := newTestConnector(t)
	require.NoError(t, conn.Disconnect())
	assert.False(t, conn.Connected())

	_, err := conn.Exec("CREATE TABLE t (id INTEGER);")
	assert.ErrorIs(t, err, types.ErrNotConnected)

	_, err = conn.Query("SELECT 1;")
	assert.ErrorIs(t, err, types.ErrNotConnected)

	// Disconnect is idempotent.
	assert.NoError(t, conn.Disconnect())
}

func TestExecReturnsGeneratedID(t *testing.T) {
	conn := newTestConnector(t)
	_, err := conn.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT);")
	require.NoError(t, err)

	id1, err := conn.Exec("INSERT INTO t (name) VALUES (?);", "a")
	require.NoError(t, err)
	id2, err := conn.Exec("INSERT INTO t (name) VALUES (?);", "b")
	require.NoError(t, err)
	assert.Equal(t, id1+1, id2)
}

func TestExecWrapsStatementErrors(t *testing.T) {
	conn := newTestConnector(t)
	_, err := conn.Exec("NOT EVEN SQL;")
	assert.ErrorIs(t, err, types.ErrStatement)

	_, err = conn.Query("SELECT FROM nothing WHERE;")
	assert.ErrorIs(t, err, types.ErrStatement)
}
