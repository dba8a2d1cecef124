package color

import (
	"fmt"
	"math"
)

// Hsl holds hue 0..360, saturation 0..100 and lightness 0..100.
type Hsl struct {
	H, S, L float64
}

// NewHsl returns an Hsl with clamped components.
func NewHsl(h, s, l float64) Hsl {
	return HslFromComponents(Triple{h, s, l})
}

// HslFromComponents clamps components into an Hsl.
func HslFromComponents(components Triple) Hsl {
	c := HSL.Clamp(components)
	return Hsl{H: c[0], S: c[1], L: c[2]}
}

// HslFromFloats scales [0,1] floats into an Hsl.
func HslFromFloats(floats Triple) Hsl {
	return HslFromComponents(HSL.FromFloats(floats))
}

func (c Hsl) Space() Space { return HSL }

func (c Hsl) Components() Triple { return Triple{c.H, c.S, c.L} }

func (c Hsl) Floats() Triple { return HSL.ToFloats(c.Components()) }

func (Hsl) sealed() {}

// ToRgb converts using the two-sided p/q formula.
func (c Hsl) ToRgb() Rgb {
	f := c.Floats()
	h, s, l := f[0], f[1], f[2]

	chroma := (1 - math.Abs(2*l-1)) * s
	if chroma == 0 {
		return RgbFromFloats(Triple{l, l, l})
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RgbFromFloats(Triple{
		hueToChannel(p, q, h+1.0/3),
		hueToChannel(p, q, h),
		hueToChannel(p, q, h-1.0/3),
	})
}

// hueToChannel evaluates one RGB channel of an HSL color. t is the hue
// shifted for the channel and may fall outside [0,1].
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HslFromRgb converts rgb to HSL. Achromatic input yields hue and
// saturation 0.
func HslFromRgb(rgb Rgb) Hsl {
	f := rgb.Floats()
	r, g, b := f[0], f[1], f[2]

	max := max3(r, g, b)
	min := min3(r, g, b)
	l := (max + min) / 2

	if max == min {
		return HslFromFloats(Triple{0, 0, l})
	}

	delta := max - min
	var s float64
	if l > 0.5 {
		s = delta / (2 - max - min)
	} else {
		s = delta / (max + min)
	}

	return HslFromFloats(Triple{hueFromRgb(r, g, b, max, delta), s, l})
}

func (c Hsl) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}
