// Command membank is the entry point for the Membank CLI.
package main

import (
	"os"

	"github.com/custodia-labs/membank/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
