// Command sortcast extrapolates measured quadratic-sort running times
// across a ladder of input sizes, prints the forecast as two table views,
// and renders linear and log-log charts.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/sortcast/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
