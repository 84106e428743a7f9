// Package main is the entry point for the boq-cost CLI.
package main

import (
	"os"

	"boq-cost/cmd/cli/cmd"
	"boq-cost/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
