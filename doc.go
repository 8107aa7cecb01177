// Package main implements the updateversions CLI tool.
//
// The updateversions tool is a command-line interface for CI build
// pipelines. It recursively scans a directory tree for files whose names
// end with a recognized suffix (default "AssemblyInfo.cs", which also
// matches "CommonAssemblyInfo.cs"), finds assembly version declarations of
// the form AssemblyVersion("major.minor.build.revision") and
// AssemblyFileVersion("..."), and replaces the build component with a new
// value. Every other byte of each file, including whitespace, wildcards,
// zero-padding, byte-order marks and line endings, is preserved.
//
// Command Usage:
//
//	updateversions [flags] <directory> <buildnumber>
//
// Flags:
//
//	-v, --version-name:     Which attribute kinds to update: "a"
//	                        (AssemblyVersion), "f" (AssemblyFileVersion) or
//	                        "b" (both, the default).
//	-f, --file-ending:      File name suffix to scan for. May be repeated.
//	                        (Defaults to "AssemblyInfo.cs")
//	-n, --dry-run:          Report the files that would change without
//	                        writing anything.
//	--major, --minor,
//	--revision:             Also set those components to the given values.
//	--env-file:             Load a dotenv file before resolving
//	                        --build-number-env.
//	--build-number-env:     Read the build number from an environment
//	                        variable (e.g. one provided by the CI server)
//	                        instead of the second positional argument.
//	--strict:               Exit non-zero when no scanned file contained a
//	                        version declaration.
//	--version:              Display the version of the CLI tool and exit.
//
// Examples:
//
//	# Set the build number in every AssemblyInfo.cs under ./src
//	updateversions ./src 7434
//
//	# Only update AssemblyVersion declarations
//	updateversions -v a ./src 7434
//
//	# Scan additional file names
//	updateversions -f AssemblyInfo.cs -f VersionInfo.cs ./src 7434
//
//	# Preview without writing
//	updateversions -n ./src 7434
//
//	# Take the build number from the CI environment
//	updateversions --env-file ci.env --build-number-env BUILD_NUMBER ./src
//
// Exit codes: 0 on success (including a run in which nothing matched,
// unless --strict is set), 1 when any file failed to read or write, 2 for
// invalid arguments or a missing or non-directory root path.
package main
