package model

import (
	"path/filepath"
	"strings"
)

// NoRoot is the root of an entry whose path has no meaningful segment,
// e.g. "./" or "../../". Real segments are never empty, so it cannot
// collide with a named root.
const NoRoot = ""

const (
	currentDir = "."
	parentDir  = ".."
	rootDir    = "/"
)

// Tokenize splits an archive entry path into its segments. Both archive
// formats use forward slashes; the host separator is accepted as well.
// Empty segments produced by repeated or trailing separators are dropped,
// and an absolute path keeps "/" as its first segment.
func Tokenize(entry string) []string {
	p := filepath.ToSlash(entry)

	var segments []string
	if strings.HasPrefix(p, rootDir) {
		segments = append(segments, rootDir)
	}

	for _, s := range strings.Split(p, "/") {
		if s == "" {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

// RootOf returns the first segment after skipping leading "." and ".."
// segments, or NoRoot when nothing remains. ".." is not resolved against
// earlier segments.
func RootOf(segments []string) string {
	for len(segments) > 0 && (segments[0] == currentDir || segments[0] == parentDir) {
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return NoRoot
	}
	return segments[0]
}

// RootOfEntry is shorthand for RootOf(Tokenize(entry))
func RootOfEntry(entry string) string {
	return RootOf(Tokenize(entry))
}
