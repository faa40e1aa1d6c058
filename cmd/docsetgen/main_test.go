package main_test

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docset"
	main "github.com/fwojciec/docset/cmd/docsetgen"
	"github.com/fwojciec/docset/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const listing = `<!DOCTYPE html>
<html><body>
<ul class="structs docblock"><li><a href="struct.Widget.html">Widget</a></li></ul>
<ul class="functions docblock"><li><a href="fn.run.html">mycrate::run</a></li></ul>
</body></html>`

func writeDoc(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// resolverFor returns a resolver that always resolves to name.
func resolverFor(name string) *mock.ProjectResolver {
	return &mock.ProjectResolver{
		ResolveProjectFn: func(context.Context, string) (*docset.Project, error) {
			return &docset.Project{Name: name}, nil
		},
	}
}

func queryRows(t *testing.T, path string) [][3]string {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT name, type, path FROM searchIndex ORDER BY name")
	require.NoError(t, err)
	defer rows.Close()

	var result [][3]string
	for rows.Next() {
		var r [3]string
		require.NoError(t, rows.Scan(&r[0], &r[1], &r[2]))
		result = append(result, r)
	}
	require.NoError(t, rows.Err())
	return result
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("builds docset with resolved project name", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeDoc(t, filepath.Join(base, "target", "doc", "mycrate", "all.html"), listing)
		out := filepath.Join(base, "out")

		m := main.NewMain()
		m.Resolver = resolverFor("mycrate")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--manifest-dir", base, "--out", out}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "mycrate.docset")
		assert.Contains(t, stdout.String(), "2 entries indexed")
		assert.Equal(t, [][3]string{
			{"Widget", "struct", "mycrate/struct.Widget.html"},
			{"run", "function", "mycrate/fn.run.html"},
		}, queryRows(t, filepath.Join(out, "mycrate.docset", "Contents", "Resources", "docset.dsidx")))
	})

	t.Run("name and source flags override defaults", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		source := filepath.Join(base, "html")
		writeDoc(t, filepath.Join(source, "mycrate", "all.html"), listing)

		m := main.NewMain()
		m.Resolver = &mock.ProjectResolver{
			ResolveProjectFn: func(context.Context, string) (*docset.Project, error) {
				t.Fatal("resolver should not be called when --name is set")
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"--name", "Custom", "--source", source, "--out", base, "--concurrency", "2"}, stdout, stderr)

		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(base, "Custom.docset", "Contents", "Resources", "Documents", "mycrate"))
	})

	t.Run("verbose logs build steps to stderr", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeDoc(t, filepath.Join(base, "target", "doc", "mycrate", "all.html"), listing)

		m := main.NewMain()
		m.Resolver = resolverFor("mycrate")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--manifest-dir", base, "--out", base, "-v"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "find listing pages")
		assert.Contains(t, stderr.String(), "index insert")
	})

	t.Run("fails when documentation has not been generated", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()

		m := main.NewMain()
		m.Resolver = resolverFor("mycrate")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--manifest-dir", base, "--out", base}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
		assert.Equal(t, 1, strings.Count(stderr.String(), "Could not find directory"))
		assert.Equal(t, 1, strings.Count(stderr.String(), "cargo doc"))
		assert.NotContains(t, stderr.String(), "docset error:")
		assert.NoDirExists(t, filepath.Join(base, "mycrate.docset"))
	})

	t.Run("reports invalid flags on stderr", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverFor("mycrate")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--bogus"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, 1, strings.Count(stderr.String(), "error:"))
		assert.Contains(t, stderr.String(), "--bogus")
	})

	t.Run("fails when project cannot be resolved", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = &mock.ProjectResolver{
			ResolveProjectFn: func(context.Context, string) (*docset.Project, error) {
				return nil, docset.Errorf(docset.ENOTFOUND, "could not find a Cargo.toml")
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--manifest-dir", t.TempDir()}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "could not find a Cargo.toml")
		assert.Contains(t, stderr.String(), "--name")
	})

	t.Run("reads the package name from Cargo.toml by default", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeDoc(t, filepath.Join(base, "Cargo.toml"), "[package]\nname = \"my-crate\"\n")
		writeDoc(t, filepath.Join(base, "target", "doc", "my_crate", "all.html"), listing)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--manifest-dir", base, "--out", base}, stdout, stderr)

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(base, "my_crate.docset", "Contents", "info.plist"))
	})

	t.Run("fails on incompatible listing markup", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeDoc(t, filepath.Join(base, "target", "doc", "mycrate", "all.html"),
			`<ul class="structs"><li><a>Widget</a></li></ul>`)

		m := main.NewMain()
		m.Resolver = resolverFor("mycrate")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--manifest-dir", base, "--out", base}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
		assert.Equal(t, 1, strings.Count(stderr.String(), "error:"))
	})
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	help := stdout.String()
	assert.Contains(t, help, "Usage:")
	for _, flag := range []string{"--out", "--source", "--name", "--manifest-dir", "--concurrency", "--verbose"} {
		assert.Contains(t, help, flag)
	}
}
