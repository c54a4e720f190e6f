package model_test

import (
	"slices"
	"testing"

	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestCollectRoots(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []string
	}{
		{
			name:    "empty archive",
			entries: nil,
			want:    []string{},
		},
		{
			name:    "files and directories",
			entries: []string{"a/1.txt", "a/2.txt", "b/x.txt", "c.txt"},
			want:    []string{"a", "b", "c.txt"},
		},
		{
			name:    "single project folder",
			entries: []string{"proj/", "proj/a.txt", "proj/sub/b.txt"},
			want:    []string{"proj"},
		},
		{
			name:    "first occurrence order",
			entries: []string{"z/1", "a/1", "z/2", "m", "a/2"},
			want:    []string{"z", "a", "m"},
		},
		{
			name:    "no-root entries collapse into one bucket",
			entries: []string{"./", "../../", "./a/x", ".", "a/y"},
			want:    []string{model.NoRoot, "a"},
		},
		{
			name:    "dot prefixes are skipped",
			entries: []string{"./src/main.go", "src/lib.go", "../docs/x.md"},
			want:    []string{"src", "docs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := model.CollectRoots(slices.Values(tt.entries))
			gt.V(t, set.Entries()).Equal(tt.want)
			gt.Equal(t, set.Count(), len(tt.want))
			gt.Equal(t, model.CountRoots(slices.Values(tt.entries)), len(set.Entries()))
		})
	}
}

func TestRootSet_Add(t *testing.T) {
	set := model.NewRootSet()
	gt.True(t, set.Add("a/1"))
	gt.False(t, set.Add("a/2"))
	gt.True(t, set.Add("./"))
	gt.False(t, set.Add("../.."))
	gt.Equal(t, set.Count(), 2)

	entries := set.Entries()
	entries[0] = "mutated"
	gt.V(t, set.Entries()).Equal([]string{"a", model.NoRoot})
}
