package main

import (
	"os"

	"github.com/tally-dev/tally/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
