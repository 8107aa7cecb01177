package updateversions

import (
	"bytes"
	"os"
)

// WriteIfChanged writes updated back to path only when it differs from
// original, so an unchanged file keeps its modification timestamp. The
// file's existing permission bits are preserved. Content is written as raw
// bytes: a UTF-8 byte-order mark and the original newline convention pass
// through exactly as they were read.
//
// Reports whether a write happened. A failed write is returned as a
// *FileError wrapping the underlying I/O error.
func WriteIfChanged(path string, original, updated []byte) (bool, error) {
	if bytes.Equal(original, updated) {
		return false, nil
	}

	// The path was just read, so a stat failure here is a real fault worth
	// reporting, not something to paper over with a default mode.
	info, err := os.Stat(path)
	if err != nil {
		return false, &FileError{Path: path, Op: "write", Err: err}
	}

	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, &FileError{Path: path, Op: "write", Err: err}
	}
	return true, nil
}
