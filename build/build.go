// Package build assembles a docset from rendered documentation.
// It coordinates skeleton creation, metadata, asset copying, parallel
// extraction of listing pages, and sequential indexing.
package build

import (
	"context"
	"fmt"
	"runtime"

	"github.com/fwojciec/docset"
	"golang.org/x/sync/errgroup"
)

// Builder orchestrates the creation of one docset.
type Builder struct {
	Bundle    docset.Bundle
	Info      docset.InfoWriter
	Index     docset.IndexStore
	Extractor docset.PageExtractor

	// Concurrency bounds the number of listing pages extracted at once.
	// Zero means runtime.NumCPU().
	Concurrency int
}

// Result holds the outcome of a build.
type Result struct {
	Pages       int
	Entries     int
	Inserted    int
	Duplicates  int
	Copy        *docset.CopyReport
	Fingerprint string
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Page      string
	Entries   int
	Copy      *docset.CopyReport
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressSkeleton ProgressType = iota
	ProgressCopied
	ProgressExtracted
	ProgressIndexed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the entries extracted from one listing page.
type pageResult struct {
	page    string
	entries []*docset.Entry
}

// Build creates the docset described by layout. Any failure other than a
// per-file copy problem aborts the build.
func (b *Builder) Build(ctx context.Context, layout *docset.Layout, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	if err := b.Bundle.CreateSkeleton(layout); err != nil {
		return nil, fmt.Errorf("creating skeleton: %w", err)
	}
	progress(ProgressEvent{Type: ProgressSkeleton})

	if err := b.Info.WriteInfo(layout.InfoPath(), docset.NewInfo(layout.Name)); err != nil {
		return nil, fmt.Errorf("writing info.plist: %w", err)
	}

	report, err := b.Bundle.CopyDocuments(layout)
	if err != nil {
		return nil, fmt.Errorf("copying documentation: %w", err)
	}
	progress(ProgressEvent{Type: ProgressCopied, Copy: report})

	if err := b.Index.Create(ctx); err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	pages, err := b.Bundle.FindListingPages(layout.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("finding listing pages: %w", err)
	}

	entries, err := b.extractAll(ctx, pages, progress)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Pages:   len(pages),
		Entries: len(entries),
		Copy:    report,
	}

	for i, entry := range entries {
		inserted, err := b.Index.Insert(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("indexing %s %q: %w", entry.Kind, entry.Name, err)
		}
		switch inserted {
		case docset.Inserted:
			result.Inserted++
		case docset.Duplicate:
			result.Duplicates++
		}
		progress(ProgressEvent{
			Type:      ProgressIndexed,
			Completed: i + 1,
			Total:     len(entries),
		})
	}

	rows, err := b.Index.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	result.Fingerprint = Fingerprint(rows)

	progress(ProgressEvent{
		Type:      ProgressFinished,
		Completed: len(entries),
		Total:     len(entries),
	})

	return result, nil
}

// extractAll runs every kind against every page on a bounded worker pool
// and gathers the entries in completion order. The first error cancels
// the remaining work.
func (b *Builder) extractAll(ctx context.Context, pages []string, progress ProgressFunc) ([]*docset.Entry, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	resultCh := make(chan pageResult, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, page := range pages {
			g.Go(func() error {
				entries, err := b.extractPage(gctx, page)
				if err != nil {
					return err
				}
				resultCh <- pageResult{page: page, entries: entries}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var all []*docset.Entry
	completed := 0
	for result := range resultCh {
		completed++
		all = append(all, result.entries...)
		progress(ProgressEvent{
			Type:      ProgressExtracted,
			Completed: completed,
			Total:     len(pages),
			Page:      result.page,
			Entries:   len(result.entries),
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// extractPage extracts every kind from a single listing page.
func (b *Builder) extractPage(ctx context.Context, page string) ([]*docset.Entry, error) {
	var entries []*docset.Entry
	for _, kind := range docset.Kinds() {
		extracted, err := b.Extractor.Extract(ctx, page, kind)
		if err != nil {
			return nil, fmt.Errorf("extracting %s from %q: %w", kind.Label(), page, err)
		}
		entries = append(entries, extracted...)
	}
	return entries, nil
}
