package docset

import (
	"path/filepath"
	"strings"
)

// Fixed names inside a docset bundle. Documentation browsers rely on them.
const (
	ContentsDirName  = "Contents"
	ResourcesDirName = "Resources"
	DocumentsDirName = "Documents"
	InfoFileName     = "info.plist"
	IndexFileName    = "docset.dsidx"
	ListingPageName  = "all.html"
)

// Layout describes where documentation is read from and where the docset
// bundle is written.
type Layout struct {
	// Name is the docset display name, e.g. "serde_json".
	Name string
	// SourceDir is the rendered documentation root (e.g. target/doc).
	SourceDir string
	// OutputDir is the directory the <Name>.docset bundle is created in.
	OutputDir string
}

// Validate returns an error if the layout contains invalid fields.
func (l *Layout) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "docset name required")
	}
	if l.SourceDir == "" {
		return Errorf(EINVALID, "documentation source directory required")
	}
	if l.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	return nil
}

// Root returns the path of the <Name>.docset bundle.
func (l *Layout) Root() string {
	return filepath.Join(l.OutputDir, l.Name+".docset")
}

// ContentsDir returns the bundle's Contents directory.
func (l *Layout) ContentsDir() string {
	return filepath.Join(l.Root(), ContentsDirName)
}

// ResourcesDir returns the bundle's Contents/Resources directory.
func (l *Layout) ResourcesDir() string {
	return filepath.Join(l.ContentsDir(), ResourcesDirName)
}

// DocumentsDir returns the directory the documentation tree is copied into.
func (l *Layout) DocumentsDir() string {
	return filepath.Join(l.ResourcesDir(), DocumentsDirName)
}

// InfoPath returns the path of the info.plist metadata file.
func (l *Layout) InfoPath() string {
	return filepath.Join(l.ContentsDir(), InfoFileName)
}

// IndexPath returns the path of the search index database.
func (l *Layout) IndexPath() string {
	return filepath.Join(l.ResourcesDir(), IndexFileName)
}

// Info holds the docset metadata written to info.plist.
type Info struct {
	BundleIdentifier  string
	BundleName        string
	PlatformFamily    string
	IsDashDocset      bool
	FallbackURL       string
	IndexFilePath     string
	JavaScriptEnabled bool
}

// NewInfo derives the docset metadata from its display name.
func NewInfo(name string) *Info {
	lower := strings.ToLower(name)
	return &Info{
		BundleIdentifier:  lower,
		BundleName:        name,
		PlatformFamily:    lower,
		IsDashDocset:      true,
		FallbackURL:       "https://docs.rs/" + name,
		IndexFilePath:     lower + "/index.html",
		JavaScriptEnabled: true,
	}
}

// InfoWriter persists docset metadata.
type InfoWriter interface {
	WriteInfo(path string, info *Info) error
}

// CopyFailure records a documentation file that could not be copied.
type CopyFailure struct {
	Path string
	Err  error
}

// CopyReport summarizes copying the documentation tree into a bundle.
type CopyReport struct {
	Copied  int
	Skipped []string // already present at the destination
	Failed  []CopyFailure
}

// Clean reports whether every file was copied.
func (r *CopyReport) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Failed) == 0
}

// Bundle materializes the docset directory tree.
type Bundle interface {
	// CreateSkeleton creates the Contents, Resources and Documents
	// directories if they do not exist.
	CreateSkeleton(layout *Layout) error

	// CopyDocuments copies the documentation tree into the Documents
	// directory. Per-file problems are reported, not returned as errors.
	CopyDocuments(layout *Layout) (*CopyReport, error)

	// FindListingPages returns every per-crate listing page under dir.
	FindListingPages(dir string) ([]string, error)
}
