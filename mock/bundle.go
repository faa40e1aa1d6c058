package mock

import "github.com/fwojciec/docset"

// Compile-time interface verification.
var (
	_ docset.Bundle     = (*Bundle)(nil)
	_ docset.InfoWriter = (*InfoWriter)(nil)
)

// Bundle is a mock implementation of docset.Bundle.
type Bundle struct {
	CreateSkeletonFn   func(layout *docset.Layout) error
	CopyDocumentsFn    func(layout *docset.Layout) (*docset.CopyReport, error)
	FindListingPagesFn func(dir string) ([]string, error)
}

func (b *Bundle) CreateSkeleton(layout *docset.Layout) error {
	return b.CreateSkeletonFn(layout)
}

func (b *Bundle) CopyDocuments(layout *docset.Layout) (*docset.CopyReport, error) {
	return b.CopyDocumentsFn(layout)
}

func (b *Bundle) FindListingPages(dir string) ([]string, error) {
	return b.FindListingPagesFn(dir)
}

// InfoWriter is a mock implementation of docset.InfoWriter.
type InfoWriter struct {
	WriteInfoFn func(path string, info *docset.Info) error
}

func (w *InfoWriter) WriteInfo(path string, info *docset.Info) error {
	return w.WriteInfoFn(path, info)
}
