package main

import (
	"os"

	"rnsid/cmd/rnsid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
