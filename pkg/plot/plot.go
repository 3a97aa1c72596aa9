// Package plot renders the forecast as line charts, one series per
// algorithm, on linear and log-log axes.
package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/eunmann/sortcast/pkg/forecast"
	"github.com/eunmann/sortcast/pkg/humanfmt"
	"github.com/eunmann/sortcast/pkg/logging"
)

// File names used by WriteFiles.
const (
	LinearFile = "quadratic_sorts_linear.png"
	LogLogFile = "quadratic_sorts_loglog.png"
)

const (
	chartWidth  = 800
	chartHeight = 600
)

// seriesPalette assigns one color per algorithm in declared order.
var seriesPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
}

// seriesStyle renders a connecting line with a dot marker on every point.
func seriesStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    4,
		DotColor:    col,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: chart.ColorAlternateGray,
		StrokeWidth: 1.0,
	}
}

// buildSeries converts the forecast rows into one continuous series per
// algorithm, x = target size, y = predicted seconds.
func buildSeries(rows []forecast.Row) []chart.Series {
	xs := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = float64(row.Size)
	}

	series := make([]chart.Series, 0, len(forecast.Algorithms))
	for i, alg := range forecast.Algorithms {
		ys := make([]float64, len(rows))
		for j, row := range rows {
			ys[j] = row.Seconds[alg]
		}
		series = append(series, chart.ContinuousSeries{
			Name:    alg,
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(seriesPalette[i%len(seriesPalette)]),
		})
	}
	return series
}

// sizeTicks labels the x-axis with the compact form of each target size.
func sizeTicks(rows []forecast.Row) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(rows))
	for _, row := range rows {
		ticks = append(ticks, chart.Tick{
			Value: float64(row.Size),
			Label: humanfmt.Count(row.Size),
		})
	}
	return ticks
}

// RenderLinear writes the linear-scale figure as PNG.
func RenderLinear(w io.Writer, rows []forecast.Row) error {
	ch := chart.Chart{
		Title:  "Quadratic Sorting (Θ(n²)) — Linear scale",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "N (input size)",
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Time (seconds)",
			GridMajorStyle: gridStyle(),
		},
		Series: buildSeries(rows),
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render linear chart: %w", err)
	}
	return nil
}

// RenderLogLog writes the log-log figure as PNG, with grid lines on both
// major and minor ticks.
func RenderLogLog(w io.Writer, rows []forecast.Row) error {
	ch := chart.Chart{
		Title:  "Quadratic Sorting (Θ(n²)) — Log–log scale (N & time)",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "N (input size, log scale)",
			Range:          &chart.LogarithmicRange{},
			Ticks:          sizeTicks(rows),
			GridMajorStyle: gridStyle(),
			GridMinorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Time (seconds, log scale)",
			Range:          &chart.LogarithmicRange{},
			GridMajorStyle: gridStyle(),
			GridMinorStyle: gridStyle(),
		},
		Series: buildSeries(rows),
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render log-log chart: %w", err)
	}
	return nil
}

// WriteFiles renders both figures into dir, logging each written path.
func WriteFiles(dir string, rows []forecast.Row) error {
	log := logging.WithPhase("chart")

	figures := []struct {
		name   string
		render func(io.Writer, []forecast.Row) error
	}{
		{LinearFile, RenderLinear},
		{LogLogFile, RenderLogLog},
	}

	for _, fig := range figures {
		path := filepath.Join(dir, fig.name)

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create chart file: %w", err)
		}
		if err := fig.render(f, rows); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close chart file: %w", err)
		}

		log.Info().Str("path", path).Msg("chart written")
	}
	return nil
}
