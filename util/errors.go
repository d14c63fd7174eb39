package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Path validation errors
	ErrInvalidPath = errors.New("invalid path: too short or too shallow")

	// Directory creation errors
	ErrNameCollision = errors.New("a file already exists with the same name")

	// File errors
	ErrExpectedFile = errors.New("expected file, got directory")

	// Metadata parsing errors
	ErrInvalidMetadata = errors.New("invalid metadata string")
)
