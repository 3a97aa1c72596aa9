package humanfmt

import (
	"math"
	"testing"
)

func TestHMS(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0.0, "00:00:00"},
		{0.4, "00:00:00"},
		{0.5, "00:00:01"},
		{1.0, "00:00:01"},
		{59.4, "00:00:59"},
		{59.6, "00:01:00"},
		{60.0, "00:01:00"},
		{61.0, "00:01:01"},
		{3599.4, "00:59:59"},
		{3599.6, "01:00:00"},
		{3600.0, "01:00:00"},
		{3661.0, "01:01:01"},
		{1332.8, "00:22:13"},
		{260.3, "00:04:20"},
		{98.2, "00:01:38"},
		{86400.0, "24:00:00"},
		{360061.0, "100:01:01"},
	}

	for _, tt := range tests {
		got := HMS(tt.input)
		if got != tt.want {
			t.Errorf("HMS(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHMSNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"NaN", math.NaN()},
	}

	for _, tt := range tests {
		got := HMS(tt.input)
		if got != "N/A" {
			t.Errorf("HMS(%s) = %q, want %q", tt.name, got, "N/A")
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.00K"},
		{5000, "5.00K"},
		{200000, "200.00K"},
		{1000000, "1.00M"},
		{10000000, "10.00M"},
		{1500000000, "1.50B"},
		{-100, "-100"},
	}

	for _, tt := range tests {
		got := Count(tt.input)
		if got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func BenchmarkHMS(b *testing.B) {
	values := []float64{0.0, 59.6, 1332.8, 133280.0}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HMS(values[i%len(values)])
	}
}
