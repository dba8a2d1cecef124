// Package floatfmt provides the numeric helpers behind every editable
// number in the color picker.
//
// The helpers operate on float64 values in the decimal domain: rounding to
// a power of ten, extracting single decimal digits, counting significant
// fractional digits, comparing two values at a fixed decimal precision and
// rendering values with a natural (trailing-zero trimmed) number of
// decimals.
//
// # Digit Positions
//
// Functions that take a digit position use the same convention: position 0
// is the last digit before the decimal point, positive positions move left
// and negative positions move right. Ordinary decimal rounding therefore
// uses negative positions:
//
//	floatfmt.RoundDigits(123.456, -2) // 123.46
//	floatfmt.RoundDigits(111.1, 1)    // 110
//
// # Precision Comparison
//
// EqualAtDigits floors (does not round) both values at the requested
// position and compares the results with a tolerance of a few ULPs. Values
// sitting exactly on a boundary can compare unequal even when their rounded
// renderings match; the field synchronizer accepts this.
//
// # Parsing
//
// ParseInput is the single entry point for user typed numbers. It trims
// whitespace and reports failure instead of returning an error so callers
// can substitute a default without surfacing anything to the user.
package floatfmt
