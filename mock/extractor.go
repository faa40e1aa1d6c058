package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of docset.PageExtractor.
type PageExtractor struct {
	ExtractFn func(ctx context.Context, pagePath string, kind docset.Kind) ([]*docset.Entry, error)
}

func (e *PageExtractor) Extract(ctx context.Context, pagePath string, kind docset.Kind) ([]*docset.Entry, error) {
	return e.ExtractFn(ctx, pagePath, kind)
}
