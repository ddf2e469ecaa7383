package main

import (
	"os"

	"github.com/contable-dev/contable/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
