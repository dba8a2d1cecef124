package color

import (
	"fmt"
	"math"
)

// Hsv holds hue 0..360, saturation 0..100 and value 0..100.
type Hsv struct {
	H, S, V float64
}

// NewHsv returns an Hsv with clamped components.
func NewHsv(h, s, v float64) Hsv {
	return HsvFromComponents(Triple{h, s, v})
}

// HsvFromComponents clamps components into an Hsv.
func HsvFromComponents(components Triple) Hsv {
	c := HSV.Clamp(components)
	return Hsv{H: c[0], S: c[1], V: c[2]}
}

// HsvFromFloats scales [0,1] floats into an Hsv.
func HsvFromFloats(floats Triple) Hsv {
	return HsvFromComponents(HSV.FromFloats(floats))
}

func (c Hsv) Space() Space { return HSV }

func (c Hsv) Components() Triple { return Triple{c.H, c.S, c.V} }

func (c Hsv) Floats() Triple { return HSV.ToFloats(c.Components()) }

func (Hsv) sealed() {}

// WithFloat returns a copy with the normalized component at axis replaced.
// Out of range axes return c unchanged.
func (c Hsv) WithFloat(axis int, value float64) Hsv {
	if axis < 0 || axis > 2 {
		return c
	}
	f := c.Floats()
	f[axis] = value
	return HsvFromFloats(f)
}

// ToRgb converts using chroma c = s*v and a six-way hue sector.
func (c Hsv) ToRgb() Rgb {
	f := c.Floats()
	h, s, v := f[0], f[1], f[2]

	chroma := s * v
	if chroma == 0 {
		return RgbFromFloats(Triple{v, v, v})
	}

	sector := hueSector(h)
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RgbFromFloats(Triple{r + m, g + m, b + m})
}

// HsvFromRgb converts rgb to HSV. Achromatic input yields hue and
// saturation 0.
func HsvFromRgb(rgb Rgb) Hsv {
	f := rgb.Floats()
	r, g, b := f[0], f[1], f[2]

	max := max3(r, g, b)
	min := min3(r, g, b)
	delta := max - min

	if delta == 0 {
		return HsvFromFloats(Triple{0, 0, max})
	}

	return HsvFromFloats(Triple{hueFromRgb(r, g, b, max, delta), delta / max, max})
}

func (c Hsv) String() string {
	return fmt.Sprintf("hsv(%g, %g%%, %g%%)", c.H, c.S, c.V)
}
