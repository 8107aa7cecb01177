// Package main implements a CLI tool that updates the build number in
// assembly version declarations across a directory tree.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/softwarepragmatism/updateversions/internal/ui"
	updateversions "github.com/softwarepragmatism/updateversions/pkg"
)

// Exit codes. Per-file failures are aggregated and reported together;
// argument and root-path problems abort before any file is touched.
const (
	exitOK         = 0
	exitFileErrors = 1
	exitUsage      = 2
)

func usage() {
	msg := `Usage:
  updateversions [options] <directory> <buildnumber>

Recursively scans the directory for files whose names end with a recognized
suffix (default: AssemblyInfo.cs, which also matches CommonAssemblyInfo.cs)
and sets the build component of every AssemblyVersion("a.b.c.d") and
AssemblyFileVersion("a.b.c.d") declaration to the given build number. All
other bytes of each file are left untouched.

Examples:
  updateversions ./src 7434
  updateversions -v a ./src 7434
  updateversions -f AssemblyInfo.cs -f VersionInfo.cs ./src 7434
  updateversions --env-file ci.env --build-number-env BUILD_NUMBER ./src

Positional arguments:
  <directory>      Root of the search. This directory and all of its
                   subdirectories are scanned.
  <buildnumber>    Non-negative integer to set as the build component.
                   May be omitted when --build-number-env is given.

Options:
`
	fmt.Fprint(os.Stderr, msg)
	pflag.PrintDefaults()
}

func main() {
	versionName := pflag.StringP("version-name", "v", "b", `Attribute kinds to update: "a" (AssemblyVersion), "f" (AssemblyFileVersion) or "b" (both).`)
	fileEndings := pflag.StringArrayP("file-ending", "f", nil, "File name suffix to scan. May be repeated. Default: AssemblyInfo.cs.")
	dryRun := pflag.BoolP("dry-run", "n", false, "Report what would change without writing any file.")
	major := pflag.Int("major", -1, "Also set the major component to this value.")
	minor := pflag.Int("minor", -1, "Also set the minor component to this value.")
	revision := pflag.Int("revision", -1, "Also set the revision component to this value.")
	envFile := pflag.String("env-file", "", "Load environment variables from this dotenv file before resolving --build-number-env.")
	buildEnv := pflag.String("build-number-env", "", "Read the build number from this environment variable instead of the second positional argument.")
	strict := pflag.Bool("strict", false, "Exit non-zero when no scanned file contained a version declaration.")
	showVersion := pflag.Bool("version", false, "Show CLI version and exit.")
	help := pflag.BoolP("help", "h", false, "Show help message and exit.")

	pflag.Usage = usage
	pflag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}
	if *showVersion {
		fmt.Println("updateversions version", Version)
		os.Exit(exitOK)
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			ui.Error("Error: could not load env file %s: %v", *envFile, err)
			os.Exit(exitUsage)
		}
	}

	args := pflag.Args()
	var rootArg, buildArg string
	switch {
	case *buildEnv != "":
		if len(args) != 1 {
			ui.Error("Error: exactly one positional argument (<directory>) is expected with --build-number-env")
			usage()
			os.Exit(exitUsage)
		}
		rootArg = args[0]
		buildArg = os.Getenv(*buildEnv)
		if buildArg == "" {
			ui.Error("Error: environment variable %s is not set", *buildEnv)
			os.Exit(exitUsage)
		}
	default:
		if len(args) != 2 {
			ui.Error("Error: <directory> and <buildnumber> positional arguments are required")
			usage()
			os.Exit(exitUsage)
		}
		rootArg, buildArg = args[0], args[1]
	}

	build, err := strconv.Atoi(buildArg)
	if err != nil || build < 0 {
		ui.Error("Error: the build number must be a non-negative integer, got %q", buildArg)
		usage()
		os.Exit(exitUsage)
	}

	var attrs updateversions.AttributeSelection
	switch *versionName {
	case "a":
		attrs = updateversions.AssemblyVersionOnly
	case "f":
		attrs = updateversions.AssemblyFileVersionOnly
	case "b":
		attrs = updateversions.BothAttributes
	default:
		ui.Error("Error: --version-name must be one of a, f or b, got %q", *versionName)
		usage()
		os.Exit(exitUsage)
	}

	opts := updateversions.Options{
		Root:        rootArg,
		Build:       build,
		Attributes:  attrs,
		FileEndings: *fileEndings,
		DryRun:      *dryRun,
	}
	if *major >= 0 {
		opts.Major = major
	}
	if *minor >= 0 {
		opts.Minor = minor
	}
	if *revision >= 0 {
		opts.Revision = revision
	}

	sum, err := updateversions.Run(opts)
	if err != nil {
		ui.Error("Error: %v", err)
		os.Exit(exitUsage)
	}

	errs := make([]string, 0, len(sum.Errors))
	for _, fe := range sum.Errors {
		errs = append(errs, fe.Error())
	}
	ui.PrintRunSummary(sum.Scanned, sum.Updated, errs, *dryRun)

	if sum.Matched == 0 {
		ui.Warning("Warning: no version declarations were found; check the directory and file ending filter.")
		if *strict {
			os.Exit(exitFileErrors)
		}
	}
	if len(sum.Errors) > 0 {
		os.Exit(exitFileErrors)
	}
}
