// Package main is the entry point for the margin-suggest CLI.
package main

import (
	"os"

	"margin-suggest/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
