package main

import (
	"os"

	"github.com/FreedomWriter/mini-component-library/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
