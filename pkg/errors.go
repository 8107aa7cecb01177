package updateversions

import (
	"errors"
	"fmt"
)

// Root-argument errors. Both are fatal and reported before any file is
// processed.
var (
	// ErrPathNotFound indicates the root path does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotADirectory indicates the root path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// FileError records a failure on a single path. Per-file errors are
// collected by Run and never abort the remaining files.
type FileError struct {
	Path string
	Op   string // "walk", "read" or "write"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
