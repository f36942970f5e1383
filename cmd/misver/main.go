// Command misver computes per-project semantic versions for a
// monorepo from repository tags, commit history, and each project's
// dependency graph, without requiring version numbers to be committed
// to source.
package main

import (
	"os"

	"github.com/discrete-sharp/mister.version/cmd/misver/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
