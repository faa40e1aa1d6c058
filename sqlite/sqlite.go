// Package sqlite provides the SQLite-backed docset search index.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Create removes any existing database file, opens a fresh one and creates
// the search index schema.
func (db *DB) Create() error {
	if db.db != nil {
		return fmt.Errorf("database %q already open", db.path)
	}

	if db.path != ":memory:" {
		if err := os.Remove(db.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove stale index: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// No WAL: the index must remain a single file inside the bundle.

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		db.db = nil
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		err := db.db.Close()
		db.db = nil
		return err
	}
	return nil
}

// Opened reports whether the connection is open.
func (db *DB) Opened() bool {
	return db.db != nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the searchIndex table and its uniqueness constraint.
// Documentation browsers read this exact shape.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE searchIndex (
			id INTEGER PRIMARY KEY,
			name TEXT,
			type TEXT,
			path TEXT
		);

		CREATE UNIQUE INDEX anchor ON searchIndex (name, type, path);
	`

	_, err := db.db.Exec(schema)
	return err
}
