package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates parent directories and writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newLayout(t *testing.T) *docset.Layout {
	t.Helper()

	base := t.TempDir()
	return &docset.Layout{
		Name:      "mycrate",
		SourceDir: filepath.Join(base, "target", "doc"),
		OutputDir: filepath.Join(base, "out"),
	}
}

func TestBundle_CreateSkeleton(t *testing.T) {
	t.Parallel()

	t.Run("creates the docset directory tree", func(t *testing.T) {
		t.Parallel()

		layout := newLayout(t)

		err := fs.NewBundle().CreateSkeleton(layout)

		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(layout.OutputDir, "mycrate.docset", "Contents", "Resources", "Documents"))
	})

	t.Run("succeeds when skeleton already exists", func(t *testing.T) {
		t.Parallel()

		layout := newLayout(t)
		bundle := fs.NewBundle()

		require.NoError(t, bundle.CreateSkeleton(layout))
		require.NoError(t, bundle.CreateSkeleton(layout))
	})

	t.Run("returns error when output is a file", func(t *testing.T) {
		t.Parallel()

		layout := newLayout(t)
		writeFile(t, layout.OutputDir, "not a directory")

		err := fs.NewBundle().CreateSkeleton(layout)

		require.Error(t, err)
	})

	t.Run("returns EINVALID for incomplete layout", func(t *testing.T) {
		t.Parallel()

		err := fs.NewBundle().CreateSkeleton(&docset.Layout{Name: "mycrate"})

		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})
}

func TestBundle_CopyDocuments(t *testing.T) {
	t.Parallel()

	t.Run("copies the documentation tree", func(t *testing.T) {
		t.Parallel()

		layout := newLayout(t)
		writeFile(t, filepath.Join(layout.SourceDir, "mycrate", "index.html"), "index")
		writeFile(t, filepath.Join(layout.SourceDir, "mycrate", "all.html"), "all")
		writeFile(t, filepath.Join(layout.SourceDir, "static.files", "main.css"), "css")
		bundle := fs.NewBundle()
		require.NoError(t, bundle.CreateSkeleton(layout))

		report, err := bundle.CopyDocuments(layout)

		require.NoError(t, err)
		assert.Equal(t, 3, report.Copied)
		assert.True(t, report.Clean())
		data, err := os.ReadFile(filepath.Join(layout.DocumentsDir(), "static.files", "main.css"))
		require.NoError(t, err)
		assert.Equal(t, "css", string(data))
	})

	t.Run("skips files that already exist", func(t *testing.T) {
		t.Parallel()

		layout := newLayout(t)
		writeFile(t, filepath.Join(layout.SourceDir, "mycrate", "index.html"), "new")
		writeFile(t, filepath.Join(layout.SourceDir, "mycrate", "all.html"), "all")
		writeFile(t, filepath.Join(layout.DocumentsDir(), "mycrate", "index.html"), "old")

		report, err := fs.NewBundle().CopyDocuments(layout)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Copied)
		assert.Equal(t, []string{filepath.Join("mycrate", "index.html")}, report.Skipped)
		assert.False(t, report.Clean())
		data, err := os.ReadFile(filepath.Join(layout.DocumentsDir(), "mycrate", "index.html"))
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})

	t.Run("does not copy a bundle nested in the source tree", func(t *testing.T) {
		t.Parallel()

		layout := newLayout(t)
		layout.OutputDir = layout.SourceDir
		writeFile(t, filepath.Join(layout.SourceDir, "mycrate", "index.html"), "index")
		bundle := fs.NewBundle()
		require.NoError(t, bundle.CreateSkeleton(layout))

		report, err := bundle.CopyDocuments(layout)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Copied)
		assert.NoDirExists(t, filepath.Join(layout.DocumentsDir(), "mycrate.docset"))
	})

	t.Run("returns ENOTFOUND when source is missing", func(t *testing.T) {
		t.Parallel()

		layout := newLayout(t)

		_, err := fs.NewBundle().CopyDocuments(layout)

		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})
}

func TestBundle_FindListingPages(t *testing.T) {
	t.Parallel()

	t.Run("finds one listing page per crate", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "serde", "all.html"), "")
		writeFile(t, filepath.Join(dir, "anyhow", "all.html"), "")
		writeFile(t, filepath.Join(dir, "anyhow", "index.html"), "")
		writeFile(t, filepath.Join(dir, "serde", "de", "all.html"), "")
		writeFile(t, filepath.Join(dir, "static.files", "main.js"), "")
		writeFile(t, filepath.Join(dir, "all.html"), "")

		pages, err := fs.NewBundle().FindListingPages(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "anyhow", "all.html"),
			filepath.Join(dir, "serde", "all.html"),
		}, pages)
	})

	t.Run("returns empty for tree without listing pages", func(t *testing.T) {
		t.Parallel()

		pages, err := fs.NewBundle().FindListingPages(t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("returns ENOTFOUND for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewBundle().FindListingPages(filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})
}
