package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/fieldsync"
	"github.com/muurk/colorpick/internal/floatfmt"
)

// formatHex names the hex notation accepted by --from and --to.
const formatHex = "hex"

// detectFormat guesses the notation of a color argument: a single token of
// hex digits (with or without '#') is hex, "hsl(...)" style input names its
// space, anything else is an RGB triple.
func detectFormat(value string) string {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "#") {
		return formatHex
	}
	if name, _, ok := strings.Cut(v, "("); ok {
		if space, err := color.ParseSpace(name); err == nil {
			return strings.ToLower(space.String())
		}
	}
	if len(v) == 6 && strings.IndexFunc(v, func(r rune) bool { return !unicode.Is(unicode.ASCII_Hex_Digit, r) }) < 0 {
		return formatHex
	}
	return "rgb"
}

// parseColor parses value in the given notation. format is a color space
// name, "hex", or empty to detect it.
func parseColor(value, format string) (color.DynamicColor, error) {
	if format == "" {
		format = detectFormat(value)
	}

	if strings.EqualFold(format, formatHex) {
		rgb, err := color.RgbFromHexCode(fieldsync.NormalizeHex(value))
		if err != nil {
			return color.DynamicColor{}, fmt.Errorf("invalid hex color %q: %w", value, err)
		}
		return color.DynamicFromColor(rgb), nil
	}

	space, err := color.ParseSpace(format)
	if err != nil {
		return color.DynamicColor{}, err
	}
	components, err := parseTriple(value)
	if err != nil {
		return color.DynamicColor{}, err
	}
	return color.NewDynamic(components, space), nil
}

// parseTriple parses three numbers separated by commas and/or whitespace,
// optionally wrapped as "rgb(...)".
func parseTriple(value string) (color.Triple, error) {
	v := strings.TrimSpace(value)
	if open := strings.IndexByte(v, '('); open >= 0 && strings.HasSuffix(v, ")") {
		v = v[open+1 : len(v)-1]
	}

	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) != 3 {
		return color.Triple{}, fmt.Errorf("expected 3 components, got %d in %q", len(parts), value)
	}

	var components color.Triple
	for i, part := range parts {
		n, ok := floatfmt.ParseInput(strings.TrimRight(part, "%°"))
		if !ok {
			return color.Triple{}, fmt.Errorf("invalid component %q", part)
		}
		components[i] = n
	}
	return components, nil
}

// formatColor renders c in the given notation: "#rrggbb" for hex, else
// "space(a, b, c)" with at most digits decimals.
func formatColor(c color.DynamicColor, format string, digits int) (string, error) {
	if strings.EqualFold(format, formatHex) {
		return "#" + c.HexCode(), nil
	}

	space, err := color.ParseSpace(format)
	if err != nil {
		return "", err
	}

	components := c.SetColorSpace(space).Components()
	parts := make([]string, len(components))
	for i, v := range components {
		parts[i] = floatfmt.FormatNatural(v, 0, digits)
	}
	return fmt.Sprintf("%s(%s)", strings.ToLower(space.String()), strings.Join(parts, ", ")), nil
}

// formatFloats renders the normalized floats of c.
func formatFloats(c color.DynamicColor, digits int) string {
	floats := c.Floats()
	parts := make([]string, len(floats))
	for i, v := range floats {
		parts[i] = floatfmt.FormatNatural(v, 1, max(1, digits))
	}
	return strings.Join(parts, ", ")
}
