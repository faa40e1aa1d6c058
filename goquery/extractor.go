// Package goquery implements listing-page extraction on top of goquery.
package goquery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
	"golang.org/x/net/html"
)

var _ docset.PageExtractor = (*Extractor)(nil)

// Extractor reads rustdoc "all items" listing pages from disk.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the entries of the given kind declared on the page.
// Anchors are matched when they descend from an element carrying the
// kind's marker class.
func (e *Extractor) Extract(ctx context.Context, pagePath string, kind docset.Kind) ([]*docset.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, docset.Errorf(docset.EINVALID, "unknown symbol kind %d", int(kind))
	}

	f, err := os.Open(pagePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docset.Errorf(docset.ENOTFOUND, "listing page %q not found", pagePath)
	}
	if err != nil {
		return nil, fmt.Errorf("opening listing page %q: %w", pagePath, err)
	}
	defer f.Close()

	return ExtractEntries(f, pagePath, kind)
}

// ExtractEntries parses HTML from r and returns the entries of the given
// kind. pagePath locates the page in the documentation tree and supplies the
// crate prefix of each entry path.
func ExtractEntries(r io.Reader, pagePath string, kind docset.Kind) ([]*docset.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, docset.Errorf(docset.EINVALID, "failed to parse HTML in %q: %v", pagePath, err)
	}

	entries := []*docset.Entry{}
	var extractErr error
	doc.Find(selectorFor(kind)).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name, ok := anchorText(sel)
		if !ok {
			extractErr = docset.Errorf(docset.EINVALID,
				"%s anchor without text in %q; unsupported rustdoc output", kind.Label(), pagePath)
			return false
		}
		href, ok := sel.Attr("href")
		if !ok {
			extractErr = docset.Errorf(docset.EINVALID,
				"%s anchor %q without href in %q; unsupported rustdoc output", kind.Label(), name, pagePath)
			return false
		}
		entries = append(entries, docset.NewEntry(name, kind, pagePath, href))
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return entries, nil
}

// selectorFor returns the CSS selector for anchors declared under kind.
func selectorFor(kind docset.Kind) string {
	return "." + kind.Marker() + " a"
}

// anchorText returns the anchor's leading text node.
func anchorText(sel *goquery.Selection) (string, bool) {
	node := sel.Get(0)
	if node == nil || node.FirstChild == nil || node.FirstChild.Type != html.TextNode {
		return "", false
	}
	return node.FirstChild.Data, true
}
