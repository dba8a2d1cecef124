package fieldsync

import (
	"strings"

	"github.com/muurk/colorpick/internal/floatfmt"
)

// FormatFunc renders a model value for display.
type FormatFunc func(float64) string

// SyncDisplayedValue decides what a numeric field should show after the
// model changed to value. It returns the text to display and whether the
// field must be overwritten.
//
// Unparsable displayed text counts as 0. With force set the field is
// always overwritten. Otherwise the displayed value and value are compared
// at precision decimal places and the displayed text is kept when they
// agree.
func SyncDisplayedValue(displayed string, value float64, precision int, force bool, format FormatFunc) (string, bool) {
	current := floatfmt.ParseOr(displayed, 0)

	if force {
		return format(value), true
	}

	if floatfmt.EqualAtDigits(current, value, -precision) {
		return displayed, false
	}

	return format(value), true
}

// SyncHexCode is the hex counterpart of SyncDisplayedValue. code is the
// model's six digit lowercase hex code.
func SyncHexCode(displayed, code string, force bool) (string, bool) {
	if !force && NormalizeHex(displayed) == code {
		return displayed, false
	}
	return code, true
}

// NormalizeHex trims whitespace and a single leading '#', and lowercases
// the rest. It does not validate.
func NormalizeHex(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "#")
	return strings.ToLower(text)
}
