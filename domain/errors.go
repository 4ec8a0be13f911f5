package domain

import "errors"

var (
	// ErrGenerationUnavailable means the text backend exhausted its retry
	// ceiling. Fatal to the run it occurred in.
	ErrGenerationUnavailable = errors.New("text generation backend unavailable")

	// ErrPersistenceFailure means the story record could not be written or
	// re-read. Fatal to the run it occurred in.
	ErrPersistenceFailure = errors.New("story persistence failure")
)
