package interfaces

import (
	"context"
	"iter"

	"github.com/m-mizutani/care/pkg/domain/types"
)

// Classifier labels a file by its content, in the manner of libmagic
// (e.g. "Zip archive data, at least v2.0 to extract")
type Classifier interface {
	Classify(ctx context.Context, path string) (string, error)
}

// ClassifierProbe reports whether a content classifier is available at
// runtime and returns it if so
type ClassifierProbe func() (Classifier, bool)

// EntryLister lists entry paths of an archive
type EntryLister interface {
	// List returns every entry path of the archive. The sequence is meant
	// to be consumed once.
	List(ctx context.Context, path string, archiveType types.ArchiveType) (iter.Seq[string], error)
}
