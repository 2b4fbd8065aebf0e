package main

import (
	"os"

	"github.com/preflighthq/preflight/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
