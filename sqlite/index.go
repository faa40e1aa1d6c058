package sqlite

import (
	"context"

	"github.com/fwojciec/docset"
)

// Compile-time interface verification.
var _ docset.IndexStore = (*Index)(nil)

// Index implements docset.IndexStore using SQLite.
type Index struct {
	db *DB
}

// NewIndex creates a new Index backed by db.
func NewIndex(db *DB) *Index {
	return &Index{db: db}
}

// Create opens a fresh database and creates the schema.
func (s *Index) Create(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Create()
}

// Insert writes the entry's row, ignoring exact duplicates.
func (s *Index) Insert(ctx context.Context, entry *docset.Entry) (docset.InsertResult, error) {
	if !s.db.Opened() {
		return 0, docset.Errorf(docset.EINTERNAL, "index not created")
	}
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	row := entry.Row()
	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO searchIndex (name, type, path)
		VALUES (?, ?, ?)
	`, row.Name, row.Type, row.Path)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return docset.Duplicate, nil
	}
	return docset.Inserted, nil
}

// Rows returns all rows ordered by id.
func (s *Index) Rows(ctx context.Context) ([]docset.Row, error) {
	if !s.db.Opened() {
		return nil, docset.Errorf(docset.EINTERNAL, "index not created")
	}

	rows, err := s.db.QueryContext(ctx, "SELECT name, type, path FROM searchIndex ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []docset.Row
	for rows.Next() {
		var row docset.Row
		if err := rows.Scan(&row.Name, &row.Type, &row.Path); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// Close closes the underlying database.
func (s *Index) Close() error {
	return s.db.Close()
}
