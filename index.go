package docset

import "context"

// InsertResult reports the outcome of a successful insertion.
type InsertResult int

const (
	// Inserted means a new row was written.
	Inserted InsertResult = iota + 1
	// Duplicate means an identical (name, type, path) row already existed
	// and nothing was written.
	Duplicate
)

// String returns a human-readable form of the result.
func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// IndexStore owns the docset search index.
//
// Implementations are not required to be safe for concurrent use; callers
// insert from a single goroutine.
type IndexStore interface {
	// Create initializes a fresh, empty index with its schema.
	// It must be called exactly once before any Insert.
	Create(ctx context.Context) error

	// Insert writes the entry's row. Inserting a row identical to an
	// existing one returns Duplicate and a nil error.
	Insert(ctx context.Context, entry *Entry) (InsertResult, error)

	// Rows returns all rows in insertion order.
	Rows(ctx context.Context) ([]Row, error)

	// Close releases the underlying database.
	Close() error
}
