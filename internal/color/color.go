package color

// Color is implemented by exactly the three concrete types Rgb, Hsl and
// Hsv. The unexported method keeps the set closed.
type Color interface {
	// Space returns the color space the value is expressed in.
	Space() Space
	// Components returns the native components, e.g. 0..360 for hue.
	Components() Triple
	// Floats returns the components normalized to [0,1].
	Floats() Triple
	// ToRgb converts to the RGB pivot.
	ToRgb() Rgb

	sealed()
}

// FromComponents builds the concrete color for space from native
// components, clamping them.
func FromComponents(space Space, components Triple) Color {
	switch space {
	case HSL:
		return HslFromComponents(components)
	case HSV:
		return HsvFromComponents(components)
	default:
		return RgbFromComponents(components)
	}
}

// FromFloats builds the concrete color for space from normalized floats.
func FromFloats(space Space, floats Triple) Color {
	return FromComponents(space, space.FromFloats(floats))
}

// FromRgb converts rgb into the concrete color type of space.
func FromRgb(space Space, rgb Rgb) Color {
	switch space {
	case HSL:
		return HslFromRgb(rgb)
	case HSV:
		return HsvFromRgb(rgb)
	default:
		return rgb
	}
}

// As converts c to the concrete type V by pivoting through RGB.
//
//	hsl := color.As[color.Hsl](color.NewRgb(255, 0, 0))
func As[V Color](c Color) V {
	var zero V
	return FromRgb(zero.Space(), c.ToRgb()).(V)
}
