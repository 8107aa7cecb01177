package updateversions

import (
	"bytes"
	"errors"
	"os"
)

// Options configures a run.
type Options struct {
	// Root is the directory to scan recursively.
	Root string
	// Build is the new build-number component (index 2 of four).
	Build int
	// Major, Minor and Revision optionally replace the other components.
	// Nil leaves a component as found in the file.
	Major    *int
	Minor    *int
	Revision *int
	// Attributes selects which declaration kinds to update.
	Attributes AttributeSelection
	// FileEndings overrides DefaultFileEndings when non-empty.
	FileEndings []string
	// DryRun reports the files that would change without writing.
	DryRun bool
}

func (o Options) replacements() Replacements {
	build := o.Build
	return Replacements{
		Major:    o.Major,
		Minor:    o.Minor,
		Build:    &build,
		Revision: o.Revision,
	}
}

// Summary is the aggregate result of one run.
type Summary struct {
	// Scanned counts the candidate files the walker produced.
	Scanned int
	// Matched counts the files containing at least one declaration.
	Matched int
	// Updated lists the files written (or, in a dry run, the files that
	// would be written).
	Updated []string
	// Errors holds every per-file failure. The run continues past them.
	Errors []*FileError
}

// Run walks opts.Root, and for each recognized file reads it, finds its
// version declarations, substitutes the configured components and writes
// the file back if anything changed. Each file is processed fully before
// the next; files share no state, and one file's read or write failure is
// recorded in the summary without aborting the rest. So is a subtree the
// walker could not list: it is skipped and the run continues.
//
// A bad root (ErrPathNotFound, ErrNotADirectory) is returned immediately
// with nothing processed. A run in which no file matched is not an error;
// callers can inspect Summary.Matched to warn about it.
func Run(opts Options) (Summary, error) {
	var sum Summary
	matcher := NewMatcher(opts.Attributes)
	repl := opts.replacements()

	err := Walk(opts.Root, opts.FileEndings, func(path string, walkErr error) error {
		if walkErr != nil {
			sum.Errors = append(sum.Errors, &FileError{Path: path, Op: "walk", Err: walkErr})
			return nil
		}
		sum.Scanned++

		original, err := os.ReadFile(path)
		if err != nil {
			sum.Errors = append(sum.Errors, &FileError{Path: path, Op: "read", Err: err})
			return nil
		}

		decls := matcher.Find(original)
		if len(decls) == 0 {
			// Not an error: the file is merely skipped.
			return nil
		}
		sum.Matched++

		updated := Substitute(original, decls, repl)

		if opts.DryRun {
			if !bytes.Equal(original, updated) {
				sum.Updated = append(sum.Updated, path)
			}
			return nil
		}

		wrote, err := WriteIfChanged(path, original, updated)
		if err != nil {
			var fe *FileError
			if !errors.As(err, &fe) {
				fe = &FileError{Path: path, Op: "write", Err: err}
			}
			sum.Errors = append(sum.Errors, fe)
			return nil
		}
		if wrote {
			sum.Updated = append(sum.Updated, path)
		}
		return nil
	})

	return sum, err
}

// DryRun is Run with writes suppressed.
func DryRun(opts Options) (Summary, error) {
	opts.DryRun = true
	return Run(opts)
}
