// Package main provides the entry point for the taxmerge CLI tool.
package main

import (
	"github.com/geneflow/taxmerge/cmd/taxmerge/cmd"
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
