// Package main is the entry point for the wishmachine CLI application.
package main

import (
	"github.com/wexinc/wishmachine/cmd/wishmachine/cmd"
)

// Version information - set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
