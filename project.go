package docset

import (
	"context"
	"strings"
)

// Project is the package whose documentation is being converted.
type Project struct {
	Name string
}

// NormalizeName converts a package name to the directory name rustdoc uses.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// ProjectResolver discovers the project that owns a directory.
type ProjectResolver interface {
	// ResolveProject returns the project rooted at dir.
	// Returns ENOTFOUND if no project can be determined.
	ResolveProject(ctx context.Context, dir string) (*Project, error)
}
