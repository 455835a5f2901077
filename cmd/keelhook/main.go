package main

import (
	"os"

	"github.com/schoolboyqueue/keelhook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
