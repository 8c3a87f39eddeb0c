// Package main is the entry point for the flixhub command line tool.
//
// It runs the catalog pipeline locally: filtering, id assignment, export
// and maintenance of the work id history.
package main

import (
	"os"

	"flixhub/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
