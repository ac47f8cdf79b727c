// SPDX-License-Identifier: MIT

// Command qdyn exposes the qdyn numerical primitives on the command line.
package main

import (
	"os"

	"github.com/katalvlaran/qdyn/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
