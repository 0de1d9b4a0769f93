package tracker

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates a source file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoSources indicates a run was started without any source.
var ErrNoSources = errors.New("no sources")

// StageLoad is the stage that opens and parses a source file.
const StageLoad = "load"

// SourceError represents a failure that aborts the run while handling one source.
type SourceError struct {
	Source string
	Stage  string // "load"
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(source, stage string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
