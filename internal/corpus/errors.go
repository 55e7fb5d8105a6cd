package corpus

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or mutator receives a
	// value of the wrong shape.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLengthMismatch is returned by SetAttributes when the number of
	// attribute sets differs from the number of documents.
	ErrLengthMismatch = errors.New("length mismatch")
)
