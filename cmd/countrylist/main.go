package main

import (
	"os"

	"github.com/BrandonKowalski/countrylist/cmd/countrylist/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
