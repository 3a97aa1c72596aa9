// Package forecast extrapolates measured quadratic-sort running times
// across a fixed ladder of input sizes.
//
// Each algorithm has one measured baseline: its time-to-completion at
// ReferenceSize elements. Under the quadratic scaling law, the predicted
// time at any other size N is baseline * (N/ReferenceSize)^2.
package forecast

import (
	"github.com/eunmann/sortcast/pkg/humanfmt"
	"github.com/eunmann/sortcast/pkg/logging"
)

// Algorithms lists the benchmarked sorts in report column order.
var Algorithms = []string{"Bubble", "Selection", "Insertion"}

// ReferenceSize is the input size at which the baselines were measured.
const ReferenceSize = 100000

// Baseline holds the measured seconds per algorithm at ReferenceSize.
var Baseline = map[string]float64{
	"Bubble":    13.328,
	"Selection": 2.603,
	"Insertion": 0.982,
}

// TargetSizes is the ladder of input sizes the forecast covers.
var TargetSizes = []int{
	1000, 5000, 10000, 20000, 50000,
	100000, 200000, 500000, 1000000, 10000000,
}

// Row is one forecast line: an input size plus, per algorithm, the
// predicted seconds and its HH:MM:SS rendering.
type Row struct {
	Size    int
	Seconds map[string]float64
	Clock   map[string]string
}

// Predict scales a baseline measurement t0 taken at size n0 to size n
// under the quadratic scaling law t0 * (n/n0)^2.
func Predict(t0 float64, n, n0 int) float64 {
	r := float64(n) / float64(n0)
	return t0 * r * r
}

// Build computes one Row per target size from the package baselines.
// Rows follow TargetSizes order and are never mutated afterwards.
func Build() []Row {
	log := logging.WithPhase("forecast")

	rows := make([]Row, 0, len(TargetSizes))
	for _, n := range TargetSizes {
		row := Row{
			Size:    n,
			Seconds: make(map[string]float64, len(Algorithms)),
			Clock:   make(map[string]string, len(Algorithms)),
		}
		for _, alg := range Algorithms {
			s := Predict(Baseline[alg], n, ReferenceSize)
			row.Seconds[alg] = s
			row.Clock[alg] = humanfmt.HMS(s)
			log.Debug().
				Str("alg", alg).
				Str("n", humanfmt.Count(n)).
				Float64("seconds", s).
				Msg("predicted")
		}
		rows = append(rows, row)
	}

	log.Info().
		Int("rows", len(rows)).
		Int("algorithms", len(Algorithms)).
		Msg("forecast built")
	return rows
}
