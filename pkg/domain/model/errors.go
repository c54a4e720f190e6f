package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTypeUnrecognizable is returned when no strategy can decide the archive type
	ErrTypeUnrecognizable = goerr.New("archive type is not recognizable")

	// ErrArchiveRead is returned when the archive cannot be parsed as the resolved type
	ErrArchiveRead = goerr.New("failed to read archive")
)
