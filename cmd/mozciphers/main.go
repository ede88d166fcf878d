package main

import (
	"os"

	"mozciphers/cmd/mozciphers/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
