package main

import (
	"os"

	"github.com/fluxo-dev/fluxo/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
