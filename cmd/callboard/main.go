// Package main is the entry point for the callboard CLI.
package main

import (
	"os"

	"github.com/brightline-labs/callboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
