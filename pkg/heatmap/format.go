package heatmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds v to 2 decimal places by formatting and re-parsing, the
// same fixed-point rounding the labels use.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return 0
	}
	return r
}

// FormatFixed renders v with exactly 2 decimals, for tooltips.
func FormatFixed(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatPercent renders a change ratio as a 1-decimal percentage.
func FormatPercent(change float64) string {
	return fmt.Sprintf("%.1f%%", change*100)
}

var siPrefixes = map[int]string{
	-8: "y", -7: "z", -6: "a", -5: "f", -4: "p", -3: "n", -2: "µ", -1: "m",
	0: "", 1: "k", 2: "M", 3: "G", 4: "T", 5: "P", 6: "E", 7: "Z", 8: "Y",
}

// FormatSI renders v at 3 significant digits with an SI suffix
// (12345 -> "12.3k"). Trailing zeros after the decimal point are
// trimmed.
func FormatSI(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}

	// Round to 3 significant digits before picking the SI group, so a
	// carry across a power of ten (999.5 -> 1.00e3) moves to the next
	// group instead of printing a fourth digit. The exponent is taken
	// from the formatted string, which is exact after the carry.
	sci := strconv.FormatFloat(v, 'e', 2, 64)
	i := strings.IndexByte(sci, 'e')
	mant, _ := strconv.ParseFloat(sci[:i], 64)
	exp, _ := strconv.Atoi(sci[i+1:])

	group := int(math.Floor(float64(exp) / 3))
	if group < -8 {
		group = -8
	}
	if group > 8 {
		group = 8
	}

	scaled := mant * math.Pow(10, float64(exp-group*3))
	intDigits := exp - group*3 + 1
	decimals := 3 - intDigits
	if decimals < 0 {
		decimals = 0
	}

	out := strconv.FormatFloat(scaled, 'f', decimals, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimRight(out, ".")
	}
	return neg + out + siPrefixes[group]
}
