package floatfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxUlps is the distance in units of least precision below which two
// floored values still count as equal.
const maxUlps = 4

// DigitError is the panic value raised by NthDigit when the rendered float
// holds a non-digit where a digit must be. It signals a bug in digit
// extraction, never bad input.
type DigitError struct {
	Rendered string
	Index    int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("float string %q contains non decimal character at index %d", e.Rendered, e.Index)
}

// render returns the shortest decimal representation of x without an
// exponent, e.g. 1e20 renders as "100000000000000000000".
func render(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// RoundDigits rounds x at the given digit position. Positive digits round
// to the left of the decimal point, negative digits to the right.
//
// Not safe for very large magnitudes: x*10^-digits may overflow or lose
// precision. Color components are bounded so this does not matter here.
func RoundDigits(x float64, digits int) float64 {
	return unscale(math.Round(scale(x, digits)), digits)
}

// scale moves the given digit position to the units place. Positive
// positions divide so that the power of ten stays an exact integer.
func scale(x float64, digits int) float64 {
	if digits > 0 {
		return x / math.Pow10(digits)
	}
	return x * math.Pow10(-digits)
}

func unscale(x float64, digits int) float64 {
	if digits > 0 {
		return x * math.Pow10(digits)
	}
	return x / math.Pow10(-digits)
}

// NthDigit returns the decimal digit of x at position n (0 is the last
// integer digit, -1 the first fractional digit). Positions outside the
// rendered number yield 0. The sign is ignored.
func NthDigit(x float64, n int) uint8 {
	s := strings.TrimPrefix(render(x), "-")

	point := strings.IndexByte(s, '.')
	if point < 0 {
		point = len(s)
	}

	var index int
	if n >= 0 {
		index = point - 1 - n
	} else {
		index = point - n
	}

	if index < 0 || index >= len(s) {
		return 0
	}

	c := s[index]
	if c < '0' || c > '9' {
		panic(&DigitError{Rendered: s, Index: index})
	}
	return c - '0'
}

// DecimalPlaces returns the number of significant fractional digits in the
// shortest decimal rendering of x.
func DecimalPlaces(x float64) int {
	s := render(x)
	point := strings.IndexByte(s, '.')
	if point < 0 {
		return 0
	}
	return len(strings.TrimRight(s[point+1:], "0"))
}

// EqualAtDigits reports whether a and b agree when both are floored at the
// given digit position. The floored values are compared with a small ULP
// tolerance rather than ==.
func EqualAtDigits(a, b float64, digits int) bool {
	return ulpsEqual(math.Floor(scale(a, digits)), math.Floor(scale(b, digits)))
}

func ulpsEqual(a, b float64) bool {
	if math.Abs(a-b) <= epsilon {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	ia := int64(math.Float64bits(a))
	ib := int64(math.Float64bits(b))
	diff := ia - ib
	if diff < 0 {
		diff = -diff
	}
	return diff <= maxUlps
}

// epsilon is the difference between 1 and the next representable float64.
var epsilon = math.Nextafter(1, 2) - 1

// FormatNatural rounds x to maxDecimals places and renders it with as many
// decimals as the rounded value needs, clamped to [minDecimals, maxDecimals].
//
//	FormatNatural(1.23456, 1, 3) // "1.235"
//	FormatNatural(1.23, 1, 3)    // "1.23"
//	FormatNatural(1, 1, 3)       // "1.0"
func FormatNatural(x float64, minDecimals, maxDecimals int) string {
	rounded := RoundDigits(x, -maxDecimals)

	places := DecimalPlaces(rounded)
	if places < minDecimals {
		places = minDecimals
	}
	if places > maxDecimals {
		places = maxDecimals
	}

	return strconv.FormatFloat(rounded, 'f', places, 64)
}

// Formatter returns a FormatNatural closure with fixed bounds.
func Formatter(minDecimals, maxDecimals int) func(float64) string {
	return func(x float64) string {
		return FormatNatural(x, minDecimals, maxDecimals)
	}
}

// ParseInput trims surrounding whitespace and parses s as a float. It
// reports false for empty, malformed or NaN input.
func ParseInput(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseOr parses s like ParseInput and returns fallback on failure.
func ParseOr(s string, fallback float64) float64 {
	if v, ok := ParseInput(s); ok {
		return v
	}
	return fallback
}
