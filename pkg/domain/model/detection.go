package model

import "github.com/m-mizutani/care/pkg/domain/types"

// Strategy selects how the archive type is decided
type Strategy int

const (
	// StrategySniff asks the content classifier first and falls back to
	// the filename extension when no classifier is available
	StrategySniff Strategy = iota
	// StrategyExplicit uses the type given by the user as is
	StrategyExplicit
	// StrategyExtension only looks at the filename extension
	StrategyExtension
)

func (s Strategy) String() string {
	switch s {
	case StrategySniff:
		return "sniff"
	case StrategyExplicit:
		return "explicit"
	case StrategyExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Detection describes how the archive type should be resolved
type Detection struct {
	Strategy Strategy
	// FileType is used only with StrategyExplicit
	FileType types.ArchiveType
	// SuppressWarning silences the notice printed when sniffing falls
	// back to the extension
	SuppressWarning bool
}
