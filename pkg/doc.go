// Package updateversions provides a library for updating the build number
// embedded in assembly version declarations across a directory tree.
//
// It provides functionalities for:
//   - Recursively discovering candidate files by a case-insensitive file
//     name suffix (default "AssemblyInfo.cs", which also matches
//     "CommonAssemblyInfo.cs").
//   - Locating AssemblyVersion and AssemblyFileVersion declarations of the
//     form Attr("major.minor.build.revision"), where each component is a
//     non-negative integer or the wildcard "*".
//   - Replacing the build component (and optionally major, minor and
//     revision) in place while leaving every other byte of the file
//     untouched, wildcards and zero-padding included.
//   - Writing files back only when their content actually changed.
//
// This library is designed to be used both via the provided CLI (the root
// package of this module) and programmatically, e.g. from a CI pipeline
// helper:
//
//	sum, err := updateversions.Run(updateversions.Options{
//	    Root:  "./src",
//	    Build: 7434,
//	})
//	if err != nil {
//	    log.Fatalf("update failed: %v", err)
//	}
//	log.Printf("updated %d of %d files", len(sum.Updated), sum.Scanned)
//
// Processing is sequential and per-file: one file's read or write failure
// is recorded in the Summary and never aborts the remaining files.
package updateversions
