package main

import (
	"os"

	"salsac-engine/cmd/salsac/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
