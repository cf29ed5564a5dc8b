package main

import (
	"os"

	"lemmyopml/cmd/lemmyopml/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
