package docset

import (
	"context"
	"path/filepath"
	"strings"
)

// pathSeparator splits fully qualified names such as "mycrate::io::Reader".
const pathSeparator = "::"

// Entry represents one symbol declaration extracted from a listing page.
type Entry struct {
	Name string
	Kind Kind
	Path string // relative to the Documents directory
}

// NewEntry builds an Entry from the raw anchor text and href found on the
// listing page at pagePath.
//
// Only the last "::" segment of rawName is kept. The path is the name of
// the page's parent directory (the crate) joined to href.
func NewEntry(rawName string, kind Kind, pagePath, href string) *Entry {
	return &Entry{
		Name: ShortName(rawName),
		Kind: kind,
		Path: ModulePrefix(pagePath) + "/" + href,
	}
}

// ShortName returns the final segment of a path-qualified symbol name.
func ShortName(raw string) string {
	segments := strings.Split(raw, pathSeparator)
	return segments[len(segments)-1]
}

// ModulePrefix returns the name of the directory containing pagePath.
func ModulePrefix(pagePath string) string {
	return filepath.Base(filepath.Dir(pagePath))
}

// Validate returns an error if the entry contains invalid fields.
// An empty name is allowed: anchor text ending in "::" shortens to "".
func (e *Entry) Validate() error {
	if !e.Kind.Valid() {
		return Errorf(EINVALID, "entry %q has unknown kind", e.Name)
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry %q path required", e.Name)
	}
	return nil
}

// Row returns the persisted form of the entry.
func (e *Entry) Row() Row {
	return Row{
		Name: e.Name,
		Type: e.Kind.PersistedType(),
		Path: e.Path,
	}
}

// Row is one (name, type, path) record in the search index.
type Row struct {
	Name string
	Type string
	Path string
}

// PageExtractor extracts symbol entries from a rendered listing page.
type PageExtractor interface {
	// Extract returns every entry of the given kind declared on the page.
	// A page without matching declarations yields an empty slice.
	// Returns EINVALID if the page markup is incompatible.
	Extract(ctx context.Context, pagePath string, kind Kind) ([]*Entry, error)
}
