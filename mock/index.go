package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of docset.IndexStore.
type IndexStore struct {
	CreateFn func(ctx context.Context) error
	InsertFn func(ctx context.Context, entry *docset.Entry) (docset.InsertResult, error)
	RowsFn   func(ctx context.Context) ([]docset.Row, error)
	CloseFn  func() error
}

func (s *IndexStore) Create(ctx context.Context) error {
	return s.CreateFn(ctx)
}

func (s *IndexStore) Insert(ctx context.Context, entry *docset.Entry) (docset.InsertResult, error) {
	return s.InsertFn(ctx, entry)
}

func (s *IndexStore) Rows(ctx context.Context) ([]docset.Row, error) {
	return s.RowsFn(ctx)
}

func (s *IndexStore) Close() error {
	return s.CloseFn()
}

// MemoryIndex returns an IndexStore backed by a slice that enforces the
// (name, type, path) uniqueness rule and the same entry validation as the
// SQLite index. It is not safe for concurrent use.
func MemoryIndex() *IndexStore {
	var rows []docset.Row
	seen := make(map[docset.Row]bool)
	return &IndexStore{
		CreateFn: func(context.Context) error {
			rows = nil
			seen = make(map[docset.Row]bool)
			return nil
		},
		InsertFn: func(_ context.Context, entry *docset.Entry) (docset.InsertResult, error) {
			if err := entry.Validate(); err != nil {
				return 0, err
			}
			row := entry.Row()
			if seen[row] {
				return docset.Duplicate, nil
			}
			seen[row] = true
			rows = append(rows, row)
			return docset.Inserted, nil
		},
		RowsFn: func(context.Context) ([]docset.Row, error) {
			return append([]docset.Row(nil), rows...), nil
		},
		CloseFn: func() error { return nil },
	}
}
