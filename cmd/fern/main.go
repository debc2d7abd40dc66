// Command fern is the CLI for the fern UI library: it renders declarative
// scene files through the real reconciler and scaffolds starter projects.
package main

import (
	"os"

	"github.com/go-fern/fern/cmd/fern/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
