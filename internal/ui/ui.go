package ui

import (
	"os"

	"github.com/fatih/color"
)

var (
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// PrintRunSummary reports the outcome of one run on stderr.
func PrintRunSummary(scanned int, updated []string, errs []string, dryRun bool) {
	Info("Scanned %d file(s).", scanned)

	if len(updated) > 0 {
		if dryRun {
			Success("Would update %d file(s):", len(updated))
		} else {
			Success("Updated %d file(s):", len(updated))
		}
		for _, f := range updated {
			Path("%s", f)
		}
	} else {
		Info("No files updated.")
	}

	if len(errs) > 0 {
		Error("Failed on %d file(s):", len(errs))
		for _, e := range errs {
			Path("%s", e)
		}
	}
}
