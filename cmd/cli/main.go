package main

import (
	"os"

	"construct-cost/cmd/cli/cmd"
	"construct-cost/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
