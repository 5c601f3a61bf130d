package main

import (
	"os"

	"mqstore/cmd/mqstorectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
