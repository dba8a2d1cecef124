package color

import "fmt"

// DynamicColor is a color held in a swappable color space. It is an
// immutable value: every setter returns a new DynamicColor.
type DynamicColor struct {
	components Triple
	space      Space
}

// NewDynamic clamps components to the maxima of space.
func NewDynamic(components Triple, space Space) DynamicColor {
	return DynamicColor{components: space.Clamp(components), space: space}
}

// DynamicFromFloats builds a DynamicColor from normalized floats.
func DynamicFromFloats(floats Triple, space Space) DynamicColor {
	return DynamicFromColor(FromFloats(space, floats))
}

// DynamicFromColor wraps a concrete color, keeping its space.
func DynamicFromColor(c Color) DynamicColor {
	return NewDynamic(c.Components(), c.Space())
}

// White is the picker's initial color.
func White() DynamicColor {
	return NewDynamic(Triple{255, 255, 255}, RGB)
}

// Components returns the native components.
func (d DynamicColor) Components() Triple {
	return d.components
}

// Space returns the current color space.
func (d DynamicColor) Space() Space {
	return d.space
}

// SetComponents replaces the components in the current space.
func (d DynamicColor) SetComponents(components Triple) DynamicColor {
	return NewDynamic(components, d.space)
}

// SetColorSpace re-expresses the color in space by pivoting through RGB.
// The pivot always runs, even when space is the current one, so hue resets
// to 0 for zero-saturation colors.
func (d DynamicColor) SetColorSpace(space Space) DynamicColor {
	rgb := d.space.ToRgb(d.components)
	return NewDynamic(space.FromRgb(rgb), space)
}

// Floats returns the components normalized against the current space.
func (d DynamicColor) Floats() Triple {
	return d.space.ToFloats(d.components)
}

// SetFloats replaces the components from normalized floats.
func (d DynamicColor) SetFloats(floats Triple) DynamicColor {
	return DynamicFromFloats(floats, d.space)
}

// Color returns the concrete color for the current space.
func (d DynamicColor) Color() Color {
	return FromComponents(d.space, d.components)
}

// ToRgb converts to the RGB pivot.
func (d DynamicColor) ToRgb() Rgb {
	return d.space.ToRgb(d.components)
}

// HexCode renders the color as six lowercase hex digits.
func (d DynamicColor) HexCode() string {
	return d.ToRgb().AsHexCode()
}

func (d DynamicColor) String() string {
	c := d.components
	return fmt.Sprintf("%s(%g, %g, %g)", d.space, c[0], c[1], c[2])
}

// ToColor converts d to the concrete type V via SetColorSpace.
//
//	rgb := color.ToColor[color.Rgb](c)
func ToColor[V Color](d DynamicColor) V {
	var zero V
	converted := d.SetColorSpace(zero.Space())
	return FromComponents(converted.space, converted.components).(V)
}
