// Package main is the entry point for the Sumo desktop shell.
package main

// Build with the following on Windows to avoid a console window:
// go build -ldflags="-H windowsgui" ./cmd/sumo

import (
	"os"

	"github.com/0xMasayoshi/sumo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
