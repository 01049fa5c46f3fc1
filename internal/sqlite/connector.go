// Package sqlite implements the persistence layer of the partshelf catalog:
// a thin gateway over one SQLite connection and the row-level store for the
// four physical tables.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/partshelf/partshelf/pkg/types"
)

// Connector is the persistence gateway: it owns exactly one connection and
// serializes all statements through it. Every write commits immediately;
// no multi-statement transaction boundary is exposed. The catalog store is
// the only intended caller.
type Connector struct {
	path string
	db   *sql.DB
	log  zerolog.Logger
}

// NewConnector returns an unconnected gateway for the database file at path.
func NewConnector(path string, log zerolog.Logger) *Connector {
	return &Connector{path: path, log: log.With().Str("component", "sqlite").Logger()}
}

// Connect opens the connection. Idempotent: a second call on an open
// connector is a no-op.
func (c *Connector) Connect() error {
	if c.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.path, err)
	}
	// Cascading deletes across the four tables rely on this pragma.
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("enable foreign keys: %w", err)
	}

	c.db = db
	c.log.Debug().Str("path", c.path).Msg("connected")
	return nil
}

// Connected reports whether the connection is open.
func (c *Connector) Connected() bool { return c.db != nil }

// Disconnect closes the connection. Subsequent operations fail with
// ErrNotConnected. Idempotent.
func (c *Connector) Disconnect() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.log.Debug().Msg("disconnected")
	return err
}

// Exec runs a parameterized write statement and returns the generated row
// id of the last insert. Driver failures are wrapped in ErrStatement.
// All writes bind their values as positional parameters; the store never
// builds SQL by concatenating externally supplied strings.
func (c *Connector) Exec(query string, args ...any) (int64, error) {
	if c.db == nil {
		return 0, types.ErrNotConnected
	}
	c.log.Debug().Str("sql", query).Msg("exec")

	res, err := c.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v (sql: %s)", types.ErrStatement, err, query)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrStatement, err)
	}
	return id, nil
}

// Query runs a parameterized read statement and returns a forward-only
// cursor. The caller closes the rows.
func (c *Connector) Query(query string, args ...any) (*sql.Rows, error) {
	if c.db == nil {
		return nil, types.ErrNotConnected
	}
	c.log.Debug().Str("sql", query).Msg("query")

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v (sql: %s)", types.ErrStatement, err, query)
	}
	return rows, nil
}

// QueryRow runs a parameterized read statement expected to return at most
// one row.
func (c *Connector) QueryRow(query string, args ...any) (*sql.Row, error) {
	if c.db == nil {
		return nil, types.ErrNotConnected
	}
	c.log.Debug().Str("sql", query).Msg("query row")
	return c.db.QueryRow(query, args...), nil
}
