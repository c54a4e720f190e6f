package magic

import (
	"context"
	"errors"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mholt/archives"
)

// UnknownLabel is returned for content no format recognizes
const UnknownLabel = "data"

// Builtin classifies files in process by their leading bytes and reports
// labels worded like libmagic's, so the same label rules apply
type Builtin struct{}

// NewBuiltin creates a Builtin classifier
func NewBuiltin() *Builtin {
	return &Builtin{}
}

// Classify identifies the outermost format of the file at path
func (b *Builtin) Classify(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer f.Close()

	// no filename: identify by content only
	format, _, err := archives.Identify(ctx, "", f)
	if errors.Is(err, archives.NoMatch) {
		return UnknownLabel, nil
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to identify file format", goerr.V("path", path))
	}

	return labelOf(format), nil
}

func labelOf(format archives.Format) string {
	switch f := format.(type) {
	case archives.CompressedArchive:
		return labelOf(f.Compression)
	case archives.Zip:
		return "Zip archive data"
	case archives.Tar:
		return "POSIX tar archive"
	case archives.Gz:
		return "gzip compressed data"
	case archives.Bz2:
		return "bzip2 compressed data"
	case archives.Xz:
		return "XZ compressed data"
	default:
		return format.MediaType()
	}
}
