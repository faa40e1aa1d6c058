package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/build"
	"github.com/fwojciec/docset/cargo"
	"github.com/fwojciec/docset/etree"
	"github.com/fwojciec/docset/fs"
	"github.com/fwojciec/docset/goquery"
	dsslog "github.com/fwojciec/docset/slog"
	"github.com/fwojciec/docset/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports its own diagnostics on stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Resolver supplies the default docset name. Replaced in tests.
	Resolver docset.ProjectResolver
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Resolver: cargo.NewResolver(),
	}
}

// Run executes the CLI with the given arguments. Every failure is described
// on stderr before it is returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsetgen"),
		kong.Description("Build a Dash docset from rustdoc HTML output"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to create parser: %v\n", err)
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	layout, err := m.resolveLayout(ctx, cli, stderr)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Layout: layout,
	}

	var (
		bundle    docset.Bundle        = fs.NewBundle()
		extractor docset.PageExtractor = goquery.NewExtractor()
		index     docset.IndexStore    = sqlite.NewIndex(sqlite.NewDB(layout.IndexPath()))
	)
	defer index.Close()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		bundle = dsslog.NewLoggingBundle(bundle, logger)
		extractor = dsslog.NewLoggingExtractor(extractor, logger)
		index = dsslog.NewLoggingIndex(index, logger)
	}

	deps.Builder = &build.Builder{
		Bundle:      bundle,
		Info:        etree.NewInfoWriter(),
		Index:       index,
		Extractor:   extractor,
		Concurrency: cli.Concurrency,
	}

	cmd := &BuildCmd{}
	return cmd.Run(deps)
}

// resolveLayout fills in defaults for the docset name and directories and
// checks that rendered documentation exists.
func (m *Main) resolveLayout(ctx context.Context, cli *CLI, stderr io.Writer) (*docset.Layout, error) {
	name := cli.Name
	if name == "" {
		project, err := m.Resolver.ResolveProject(ctx, cli.ManifestDir)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", docset.ErrorMessage(err))
			fmt.Fprintln(stderr, "Hint: Use --name to set the docset name explicitly")
			return nil, err
		}
		name = project.Name
	}

	source := cli.Source
	if source == "" {
		source = filepath.Join(cli.ManifestDir, "target", "doc")
	}

	info, err := os.Stat(source)
	if errors.Is(err, iofs.ErrNotExist) || (err == nil && !info.IsDir()) {
		fmt.Fprintf(stderr, "Could not find directory %q.\n", source)
		fmt.Fprintln(stderr, "Hint: Run `cargo doc` before running docsetgen")
		return nil, docset.Errorf(docset.ENOTFOUND, "documentation not found at %q", source)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return nil, err
	}

	layout := &docset.Layout{
		Name:      name,
		SourceDir: source,
		OutputDir: cli.Out,
	}
	if err := layout.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", docset.ErrorMessage(err))
		return nil, err
	}
	return layout, nil
}
