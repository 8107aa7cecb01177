package main

// Version is the CLI's own version, stamped via -ldflags at release time.
var Version = "dev"
