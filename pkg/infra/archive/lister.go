package archive

import (
	"context"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/care/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mholt/archives"
)

// tarCompressions are the transparent compressions tried on tar-like archives
var tarCompressions = []archives.Compression{
	archives.Gz{},
	archives.Bz2{},
	archives.Xz{},
}

// Lister reads entry names of zip and tar archives
type Lister struct{}

// NewLister creates a new Lister
func NewLister() *Lister {
	return &Lister{}
}

// List opens the archive at path as archiveType and returns all entry names.
// Open failures (e.g. a missing file) are returned as is; any failure to
// parse the content is wrapped with model.ErrArchiveRead.
func (l *Lister) List(ctx context.Context, path string, archiveType types.ArchiveType) (iter.Seq[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive", goerr.V("path", path))
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat archive", goerr.V("path", path))
	}
	if stat.Size() == 0 {
		return nil, goerr.Wrap(model.ErrArchiveRead, "archive is empty", goerr.V("path", path))
	}

	var names []string
	collect := func(_ context.Context, info archives.FileInfo) error {
		names = append(names, info.NameInArchive)
		return nil
	}

	switch archiveType {
	case types.ZipArchive:
		err = archives.Zip{}.Extract(ctx, f, collect)
	case types.TarArchive:
		err = extractTar(ctx, f, collect)
	default:
		return nil, goerr.New("unsupported archive type", goerr.V("type", archiveType))
	}
	if err != nil {
		return nil, goerr.Wrap(model.ErrArchiveRead, "failed to read archive entries",
			goerr.V("path", path),
			goerr.V("type", archiveType),
			goerr.V("reason", err.Error()),
		)
	}

	ctxlog.From(ctx).Debug("Listed archive entries",
		"path", path,
		"type", archiveType,
		"entries", len(names),
	)

	return slices.Values(names), nil
}

// extractTar walks a tar stream, decompressing it first when its header
// matches one of tarCompressions
func extractTar(ctx context.Context, f io.ReadSeeker, handle archives.FileHandler) error {
	rc, err := openTarStream(ctx, f)
	if err != nil {
		return err
	}
	defer rc.Close()

	return archives.Tar{}.Extract(ctx, rc, handle)
}

func openTarStream(ctx context.Context, f io.ReadSeeker) (io.ReadCloser, error) {
	for _, comp := range tarCompressions {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		mr, err := comp.Match(ctx, "", f)
		if err != nil {
			return nil, err
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		if mr.ByStream {
			return comp.OpenReader(f)
		}
	}
	return io.NopCloser(f), nil
}
