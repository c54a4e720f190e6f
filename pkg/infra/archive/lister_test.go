package archive_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/care/pkg/domain/types"
	"github.com/m-mizutani/care/pkg/infra/archive"
	"github.com/m-mizutani/care/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
	"github.com/mholt/archives"
)

func TestLister_List(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	entries := []string{"a/", "a/1.txt", "a/2.txt", "b/x.txt", "c.txt"}

	tests := []struct {
		name        string
		path        string
		archiveType types.ArchiveType
	}{
		{
			name:        "zip",
			path:        testutil.WriteZip(t, dir, "test.zip", entries...),
			archiveType: types.ZipArchive,
		},
		{
			name:        "plain tar",
			path:        testutil.WriteTar(t, dir, "test.tar", nil, entries...),
			archiveType: types.TarArchive,
		},
		{
			name:        "gzip tar",
			path:        testutil.WriteTar(t, dir, "test.tar.gz", testutil.Gzip, entries...),
			archiveType: types.TarArchive,
		},
		{
			name:        "bzip2 tar",
			path:        testutil.WriteTar(t, dir, "test.tar.bz2", testutil.Bzip2, entries...),
			archiveType: types.TarArchive,
		},
		{
			name:        "xz tar",
			path:        testutil.WriteTar(t, dir, "test.tar.xz", testutil.XZ, entries...),
			archiveType: types.TarArchive,
		},
		{
			name:        "compression is detected by content, not name",
			path:        testutil.WriteTar(t, dir, "misnamed.tar", testutil.Gzip, entries...),
			archiveType: types.TarArchive,
		},
	}

	lister := archive.NewLister()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := lister.List(ctx, tt.path, tt.archiveType)
			gt.NoError(t, err)
			gt.V(t, slices.Collect(seq)).Equal(entries)
		})
	}
}

func TestLister_List_ReadError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	lister := archive.NewLister()

	zipPath := testutil.WriteZip(t, dir, "ok.zip", "a.txt")
	tarPath := testutil.WriteTar(t, dir, "ok.tar", nil, "a.txt")

	truncated, err := os.ReadFile(testutil.WriteTar(t, dir, "full.tar.gz", testutil.Gzip, "a/1.txt", "a/2.txt"))
	gt.NoError(t, err)

	tests := []struct {
		name        string
		path        string
		archiveType types.ArchiveType
	}{
		{
			name:        "corrupted zip",
			path:        testutil.WriteFile(t, dir, "broken.zip", testutil.Garbage()),
			archiveType: types.ZipArchive,
		},
		{
			name:        "corrupted tar",
			path:        testutil.WriteFile(t, dir, "broken.tar", testutil.Garbage()),
			archiveType: types.TarArchive,
		},
		{
			name:        "empty zip file",
			path:        testutil.WriteFile(t, dir, "empty.zip", nil),
			archiveType: types.ZipArchive,
		},
		{
			name:        "empty tar file",
			path:        testutil.WriteFile(t, dir, "empty.tar", nil),
			archiveType: types.TarArchive,
		},
		{
			name:        "truncated gzip tar",
			path:        testutil.WriteFile(t, dir, "truncated.tar.gz", truncated[:len(truncated)/2]),
			archiveType: types.TarArchive,
		},
		{
			name:        "tar read as zip",
			path:        tarPath,
			archiveType: types.ZipArchive,
		},
		{
			name:        "zip read as tar",
			path:        zipPath,
			archiveType: types.TarArchive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lister.List(ctx, tt.path, tt.archiveType)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrArchiveRead))
		})
	}
}

func TestLister_List_MissingFile(t *testing.T) {
	lister := archive.NewLister()
	_, err := lister.List(context.Background(), filepath.Join(t.TempDir(), "none.zip"), types.ZipArchive)
	gt.Error(t, err)
	gt.False(t, errors.Is(err, model.ErrArchiveRead))
	gt.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLister_List_SingleTraversal(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteTar(t, dir, "roots.tgz", archives.Gz{}, "./", "./proj/", "./proj/main.go", "./README")

	seq, err := archive.NewLister().List(context.Background(), path, types.TarArchive)
	gt.NoError(t, err)

	set := model.CollectRoots(seq)
	gt.V(t, set.Entries()).Equal([]string{model.NoRoot, "proj", "README"})
}
