// Command searchbench benchmarks search structures over synthetic
// passenger datasets and exports the timing table.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/searchbench/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
