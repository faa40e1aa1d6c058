package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.ProjectResolver = (*ProjectResolver)(nil)

// ProjectResolver is a mock implementation of docset.ProjectResolver.
type ProjectResolver struct {
	ResolveProjectFn func(ctx context.Context, dir string) (*docset.Project, error)
}

func (r *ProjectResolver) ResolveProject(ctx context.Context, dir string) (*docset.Project, error) {
	return r.ResolveProjectFn(ctx, dir)
}
