// Package fs provides file-based docset bundle operations.
package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docset"
)

// Ensure Bundle implements docset.Bundle at compile time.
var _ docset.Bundle = (*Bundle)(nil)

// Bundle creates docset directories and copies documentation into them.
type Bundle struct{}

// NewBundle creates a new Bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// CreateSkeleton creates Contents/Resources/Documents under the docset root.
func (b *Bundle) CreateSkeleton(layout *docset.Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(layout.DocumentsDir(), 0755); err != nil {
		return fmt.Errorf("could not create skeleton of docset: %w", err)
	}
	return nil
}

// CopyDocuments copies every file under layout.SourceDir into the Documents
// directory, preserving relative paths. Files already present at the
// destination are skipped. Per-file failures are collected in the report.
func (b *Bundle) CopyDocuments(layout *docset.Layout) (*docset.CopyReport, error) {
	src := layout.SourceDir
	info, err := os.Stat(src)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, docset.Errorf(docset.ENOTFOUND, "documentation not found at %q", src)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, docset.Errorf(docset.EINVALID, "documentation source %q is not a directory", src)
	}

	// The bundle may be written inside the source tree; never copy it into itself.
	root, err := filepath.Abs(layout.Root())
	if err != nil {
		return nil, err
	}
	dst := layout.DocumentsDir()

	report := &docset.CopyReport{}
	err = filepath.WalkDir(src, func(path string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			report.Failed = append(report.Failed, docset.CopyFailure{Path: path, Err: walkErr})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		abs, err := filepath.Abs(path)
		if err == nil && abs == root {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			report.Failed = append(report.Failed, docset.CopyFailure{Path: path, Err: err})
			return nil
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				report.Failed = append(report.Failed, docset.CopyFailure{Path: path, Err: err})
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if _, err := os.Lstat(target); err == nil {
			report.Skipped = append(report.Skipped, rel)
			return nil
		}

		if err := copyFile(path, target); err != nil {
			report.Failed = append(report.Failed, docset.CopyFailure{Path: path, Err: err})
			return nil
		}
		report.Copied++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// FindListingPages returns dir/*/all.html in lexical order.
func (b *Bundle) FindListingPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, docset.Errorf(docset.ENOTFOUND, "documentation not found at %q", dir)
	}
	if err != nil {
		return nil, err
	}

	var pages []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasSuffix(e.Name(), ".docset") {
			continue
		}
		page := filepath.Join(dir, e.Name(), docset.ListingPageName)
		if info, err := os.Stat(page); err == nil && info.Mode().IsRegular() {
			pages = append(pages, page)
		}
	}
	sort.Strings(pages)

	return pages, nil
}

// copyFile copies src to dst, failing if dst already exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
