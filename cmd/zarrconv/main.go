// Package main provides the entry point for the zarrconv CLI tool.
package main

import (
	"github.com/clbarnes/zarrs-conventions/cmd/zarrconv/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
