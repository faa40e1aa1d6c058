package main

import (
	"fmt"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	progress := func(event build.ProgressEvent) {
		if event.Type != build.ProgressCopied || event.Copy == nil {
			return
		}
		if n := len(event.Copy.Skipped); n > 0 {
			fmt.Fprintf(deps.Stderr, "warning: %d files already existed in %s and were not copied\n",
				n, deps.Layout.DocumentsDir())
		}
		if n := len(event.Copy.Failed); n > 0 {
			fmt.Fprintf(deps.Stderr, "warning: %d files could not be copied to %s\n", n, deps.Layout.DocumentsDir())
			for _, f := range event.Copy.Failed {
				fmt.Fprintf(deps.Stderr, "  %s: %v\n", f.Path, f.Err)
			}
			fmt.Fprintln(deps.Stderr, "You will need to copy them manually for a valid docset.")
		}
	}

	result, err := deps.Builder.Build(deps.Ctx, deps.Layout, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created %s\n", deps.Layout.Root())
	fmt.Fprintf(deps.Stdout, "  %d listing pages, %d entries indexed (%d duplicates ignored)\n",
		result.Pages, result.Inserted, result.Duplicates)

	return nil
}
