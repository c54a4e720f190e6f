package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Version is the version of care
const Version = "0.1.0"

// ArchiveType is the family of reader used to open an archive
type ArchiveType string

const (
	// ZipArchive covers ZIP containers
	ZipArchive ArchiveType = "zip"
	// TarArchive covers plain tar and gzip/bzip2/xz compressed tar
	TarArchive ArchiveType = "tar"
)

// ArchiveTypes lists every supported archive type in display order
var ArchiveTypes = []ArchiveType{ZipArchive, TarArchive}

func (t ArchiveType) String() string { return string(t) }

// Validate returns an error if t is not a supported archive type
func (t ArchiveType) Validate() error {
	switch t {
	case ZipArchive, TarArchive:
		return nil
	default:
		return goerr.New("unsupported archive type", goerr.V("type", string(t)))
	}
}

// ParseArchiveType converts a user supplied name (case-insensitive) into ArchiveType
func ParseArchiveType(s string) (ArchiveType, error) {
	t := ArchiveType(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}
