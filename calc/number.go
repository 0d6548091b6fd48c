package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseNumber reads the longest numeric literal at the start of s.
// Trailing garbage is ignored ("12(" is 12) and a string with no numeric
// prefix yields NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	m := numericPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}

	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// Out of range literals come back as ±Inf together with an error,
	// which is exactly the value we want.
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// FormatNumber renders f using the shortest digits that round-trip.
// Exponents from -7 to 20 are written out in full, anything outside that
// range uses "1.5e+21" style notation.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	e, _ := strconv.Atoi(exp)

	k := len(digits)
	n := e + 1 // position of the decimal point relative to digits

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	expSign := "+"
	if n-1 < 0 {
		expSign = "-"
	}
	expAbs := strconv.Itoa(int(math.Abs(float64(n - 1))))
	if k == 1 {
		return sign + digits + "e" + expSign + expAbs
	}
	return sign + digits[:1] + "." + digits[1:] + "e" + expSign + expAbs
}
