package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidHex is returned for hex codes that are not exactly six
// hexadecimal digits.
var ErrInvalidHex = errors.New("invalid hex color code")

// Rgb holds red, green and blue in 0..255.
type Rgb struct {
	R, G, B float64
}

// NewRgb returns an Rgb with components clamped to 0..255.
func NewRgb(r, g, b float64) Rgb {
	return RgbFromComponents(Triple{r, g, b})
}

// RgbFromComponents clamps components into an Rgb.
func RgbFromComponents(components Triple) Rgb {
	c := RGB.Clamp(components)
	return Rgb{R: c[0], G: c[1], B: c[2]}
}

// RgbFromFloats scales [0,1] floats into an Rgb.
func RgbFromFloats(floats Triple) Rgb {
	return RgbFromComponents(RGB.FromFloats(floats))
}

func (c Rgb) Space() Space { return RGB }

func (c Rgb) Components() Triple { return Triple{c.R, c.G, c.B} }

func (c Rgb) Floats() Triple { return RGB.ToFloats(c.Components()) }

func (c Rgb) ToRgb() Rgb { return c }

func (Rgb) sealed() {}

// Bytes truncates each channel to 8 bits.
func (c Rgb) Bytes() (r, g, b uint8) {
	c = RgbFromComponents(c.Components())
	return uint8(c.R), uint8(c.G), uint8(c.B)
}

// AsHexCode renders the truncated 8-bit channels as six lowercase hex
// digits without a leading '#'.
func (c Rgb) AsHexCode() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// RgbFromHexCode parses exactly six hex digits. The caller strips any
// leading '#'.
func RgbFromHexCode(code string) (Rgb, error) {
	if len(code) != 6 {
		return Rgb{}, fmt.Errorf("%w: %q has %d characters, want 6", ErrInvalidHex, code, len(code))
	}

	var channels Triple
	for i := range channels {
		v, err := strconv.ParseUint(code[i*2:i*2+2], 16, 8)
		if err != nil {
			return Rgb{}, fmt.Errorf("%w: %q", ErrInvalidHex, code)
		}
		channels[i] = float64(v)
	}

	return RgbFromComponents(channels), nil
}

func (c Rgb) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}
