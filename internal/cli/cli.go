// Package cli implements the command-line interface for sortcast.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/eunmann/sortcast/pkg/forecast"
	"github.com/eunmann/sortcast/pkg/logging"
	"github.com/eunmann/sortcast/pkg/plot"
	"github.com/eunmann/sortcast/pkg/report"
)

// Run executes sortcast with the given arguments. The documented usage is
// no arguments at all: build the forecast, print both table views, write
// both charts. Flags only adjust logging and chart output.
func Run(args []string) error {
	fs := flag.NewFlagSet("sortcast", flag.ContinueOnError)
	chartsDir := fs.String("charts-dir", ".", "directory to write chart PNGs into")
	noCharts := fs.Bool("no-charts", false, "skip chart rendering")
	debug := fs.Bool("debug", false, "enable debug logging")
	humanLog := fs.Bool("human-log", false, "human-friendly console logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	logging.Init(*debug, *humanLog)

	rows := forecast.Build()

	report.WriteSeconds(os.Stdout, rows)
	report.WriteClock(os.Stdout, rows)

	if *noCharts {
		return nil
	}
	return plot.WriteFiles(*chartsDir, rows)
}
