package calc

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	// runtime sum, a constant expression would fold to exactly 0.3
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{-4, "-4"},
		{a + b, "0.30000000000000004"},
		{0.3, "0.3"},
		{123.456, "123.456"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-10, "1.5e-10"},
		{1e-7, "1e-7"},
		{0.000001, "0.000001"},
		{-1.5e300, "-1.5e+300"},
		{math.Copysign(0, -1), "0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.Pi, "3.141592653589793"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"7", 7},
		{"  7", 7},
		{"-4", -4},
		{"0.", 0},
		{".5", 0.5},
		{"1e3", 1000},
		{"1e", 1},
		{"12(", 12},
		{"3.5)", 3.5},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNumberNaN(t *testing.T) {
	for _, in := range []string{"", "(", "NaN", "abc", "."} {
		if got := ParseNumber(in); !math.IsNaN(got) {
			t.Errorf("ParseNumber(%q) = %v, want NaN", in, got)
		}
	}
}
