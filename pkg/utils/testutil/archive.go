// Package testutil builds archive fixtures for tests
package testutil

import (
	"archive/tar"
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mholt/archives"
)

// Compressions used for compressed tar fixtures
var (
	Gzip  archives.Compressor = archives.Gz{}
	Bzip2 archives.Compressor = archives.Bz2{}
	XZ    archives.Compressor = archives.Xz{}
)

func content(name string) []byte {
	return []byte("content of " + name + "\n")
}

// WriteZip creates a zip archive at dir/name holding entries in order.
// Entries ending with "/" are stored as directories.
func WriteZip(t testing.TB, dir, name string, entries ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, entry := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatalf("failed to add %s: %v", entry, err)
		}
		if strings.HasSuffix(entry, "/") {
			continue
		}
		if _, err := w.Write(content(entry)); err != nil {
			t.Fatalf("failed to write %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}

	return path
}

// WriteTar creates a tar archive at dir/name holding entries in order,
// compressed with comp unless comp is nil
func WriteTar(t testing.TB, dir, name string, comp archives.Compressor, entries ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	if comp != nil {
		cw, err := comp.OpenWriter(f)
		if err != nil {
			t.Fatalf("failed to open compressor: %v", err)
		}
		defer func() {
			if err := cw.Close(); err != nil {
				t.Fatalf("failed to close compressor: %v", err)
			}
		}()
		w = cw
	}

	tw := tar.NewWriter(w)
	for _, entry := range entries {
		hdr := &tar.Header{Name: entry, Mode: 0644}
		var body []byte
		if strings.HasSuffix(entry, "/") {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0755
		} else {
			hdr.Typeflag = tar.TypeReg
			body = content(entry)
			hdr.Size = int64(len(body))
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("failed to write header %s: %v", entry, err)
		}
		if _, err := tw.Write(body); err != nil {
			t.Fatalf("failed to write %s: %v", entry, err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("failed to close tar writer: %v", err)
	}

	return path
}

// WriteFile creates dir/name with data
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Garbage returns bytes that are neither a zip nor a tar header
func Garbage() []byte {
	return []byte(strings.Repeat("this is not an archive at all\n", 40))
}
