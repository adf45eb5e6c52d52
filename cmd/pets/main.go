// Command pets is a terminal browser for a public animal adoption listing.
package main

import (
	"fmt"
	"os"

	"github.com/Aliagaaaaaa/pets/internal/cli"
	"github.com/Aliagaaaaaa/pets/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to exit code 1.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
