package report

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/eunmann/sortcast/pkg/forecast"
)

func TestWriteSeconds(t *testing.T) {
	rows := forecast.Build()
	var buf bytes.Buffer

	WriteSeconds(&buf, rows)
	out := buf.String()

	if !strings.Contains(out, SecondsHeader) {
		t.Errorf("output missing section header %q", SecondsHeader)
	}
	for _, alg := range forecast.Algorithms {
		if !strings.Contains(out, alg) {
			t.Errorf("output missing column %q", alg)
		}
	}
	for _, n := range forecast.TargetSizes {
		if !strings.Contains(out, strconv.Itoa(n)) {
			t.Errorf("output missing row for N=%d", n)
		}
	}
	// Bubble at N=1e6: 13.328 * 100 = 1332.8
	if !strings.Contains(out, "1332.8") {
		t.Errorf("output missing predicted seconds 1332.8, got:\n%s", out)
	}
}

func TestWriteClock(t *testing.T) {
	rows := forecast.Build()
	var buf bytes.Buffer

	WriteClock(&buf, rows)
	out := buf.String()

	if !strings.Contains(out, ClockHeader) {
		t.Errorf("output missing section header %q", ClockHeader)
	}
	for _, want := range []string{"00:22:13", "00:04:20", "00:01:38"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing clock string %q", want)
		}
	}
}

func TestRowCount(t *testing.T) {
	rows := forecast.Build()
	var buf bytes.Buffer

	WriteClock(&buf, rows)

	// Header line + column header + one line per target size.
	lines := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	want := 2 + len(forecast.TargetSizes)
	if lines != want {
		t.Errorf("non-empty output lines = %d, want %d:\n%s", lines, want, buf.String())
	}
}
