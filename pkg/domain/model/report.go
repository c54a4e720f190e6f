package model

import "github.com/m-mizutani/care/pkg/domain/types"

// InspectRequest is the input of a single archive inspection
type InspectRequest struct {
	Path      string
	Detection Detection
}

// RootReport is the result of counting root entries of an archive
type RootReport struct {
	Path  string
	Type  types.ArchiveType
	Roots []string // distinct roots in first-seen order
}

// Count returns the number of distinct root entries
func (r *RootReport) Count() int {
	return len(r.Roots)
}
