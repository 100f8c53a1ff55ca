// Command hccheck verifies that tour files are Hamiltonian cycles of an
// HCP graph file.
package main

import (
	"os"

	"github.com/katalvlaran/hccheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
