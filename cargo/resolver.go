// Package cargo resolves the Rust package whose documentation is converted.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docset"
	"github.com/pelletier/go-toml/v2"
)

// ManifestName is the file name of a Cargo manifest.
const ManifestName = "Cargo.toml"

var _ docset.ProjectResolver = (*Resolver)(nil)

// manifest is the subset of Cargo.toml the resolver reads.
type manifest struct {
	Package *struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Workspace *struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

// Resolver reads the package name from Cargo.toml.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveProject reads dir/Cargo.toml and returns its package with the name
// normalized the way rustdoc names documentation directories.
func (r *Resolver) ResolveProject(ctx context.Context, dir string) (*docset.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docset.Errorf(docset.ENOTFOUND, "could not find a %s in %q", ManifestName, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestName, err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, docset.Errorf(docset.EINVALID, "parsing %s: %v", path, err)
	}

	if m.Package == nil || m.Package.Name == "" {
		if m.Workspace != nil {
			return nil, docset.Errorf(docset.ENOTFOUND,
				"package name could not be found; %s describes a virtual workspace. Use --name to choose a crate", path)
		}
		return nil, docset.Errorf(docset.ENOTFOUND, "package name could not be found in %s. Use --name to set it", path)
	}

	return &docset.Project{Name: docset.NormalizeName(m.Package.Name)}, nil
}
