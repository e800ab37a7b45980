package main

import (
	"os"

	"github.com/quantnse/stayup/cmd/stayup/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
