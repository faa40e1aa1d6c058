package main

import (
	"context"
	"io"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Layout  *docset.Layout
	Builder *build.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out         string `short:"o" env:"DOCSET_OUT" default:"." help:"Directory the <name>.docset bundle is created in"`
	Source      string `short:"s" env:"DOCSET_SOURCE" help:"Rendered documentation root (default: <manifest-dir>/target/doc)"`
	Name        string `short:"n" env:"DOCSET_NAME" help:"Docset name (default: package name from Cargo.toml)"`
	ManifestDir string `name:"manifest-dir" default:"." help:"Directory containing Cargo.toml"`
	Concurrency int    `short:"c" default:"0" help:"Listing pages extracted in parallel (0 uses all CPUs)"`
	Verbose     bool   `short:"v" help:"Log build steps to stderr"`
}

// BuildCmd builds one docset.
type BuildCmd struct{}
