package core

import (
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrInvalid is returned for malformed names.
	// Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid
)
