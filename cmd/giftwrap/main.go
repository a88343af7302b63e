package main

import (
	"os"

	"github.com/piwi3910/giftwrap/cmd/giftwrap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
