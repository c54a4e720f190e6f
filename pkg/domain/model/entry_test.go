package model_test

import (
	"testing"

	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  []string
	}{
		{name: "empty", entry: "", want: nil},
		{name: "single file", entry: "a.txt", want: []string{"a.txt"}},
		{name: "nested", entry: "proj/sub/b.txt", want: []string{"proj", "sub", "b.txt"}},
		{name: "directory entry", entry: "proj/", want: []string{"proj"}},
		{name: "repeated separators", entry: "proj//b.txt", want: []string{"proj", "b.txt"}},
		{name: "leading current dir", entry: "./proj/a", want: []string{".", "proj", "a"}},
		{name: "parent dirs", entry: "../../x", want: []string{"..", "..", "x"}},
		{name: "absolute", entry: "/etc/passwd", want: []string{"/", "etc", "passwd"}},
		{name: "only separators", entry: "///", want: []string{"/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.V(t, model.Tokenize(tt.entry)).Equal(tt.want)
		})
	}
}

func TestRootOf(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{name: "no segments", segments: nil, want: model.NoRoot},
		{name: "plain", segments: []string{"proj", "a"}, want: "proj"},
		{name: "current dir only", segments: []string{"."}, want: model.NoRoot},
		{name: "parents only", segments: []string{"..", ".."}, want: model.NoRoot},
		{name: "mixed prefix", segments: []string{".", "..", ".", "src", "main.go"}, want: "src"},
		{name: "parent is not resolved", segments: []string{"a", "..", "b"}, want: "a"},
		{name: "absolute root", segments: []string{"/", "etc"}, want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, model.RootOf(tt.segments), tt.want)
		})
	}
}

func TestRootOfEntry(t *testing.T) {
	t.Run("self and parent references have no root", func(t *testing.T) {
		for _, entry := range []string{"", ".", "./", "..", "../../", "./../."} {
			gt.Equal(t, model.RootOfEntry(entry), model.NoRoot)
		}
	})

	t.Run("entries sharing first segment share root", func(t *testing.T) {
		gt.Equal(t, model.RootOfEntry("proj/a.txt"), "proj")
		gt.Equal(t, model.RootOfEntry("proj/sub/b.txt"), "proj")
		gt.Equal(t, model.RootOfEntry("./proj/c.txt"), "proj")
	})
}
