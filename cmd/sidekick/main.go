// Package main provides the entry point for the sidekick CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sidekick-cli/sidekick/cmd/sidekick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
