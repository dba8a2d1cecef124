// Package color implements the picker's color model: the supported color
// spaces, one concrete type per space and DynamicColor, the value the rest
// of the application observes.
//
// # Color Spaces
//
// Three spaces are supported, each with fixed component maxima:
//
//	RGB  R 0..255  G 0..255  B 0..255
//	HSL  H 0..360  S 0..100  L 0..100
//	HSV  H 0..360  S 0..100  V 0..100
//
// Components are stored as float64 in their native range and clamped to
// [0, max] on every construction and mutation.
//
// # Conversions
//
// RGB is the pivot. Every conversion goes source -> Rgb -> destination;
// there is no direct HSL <-> HSV formula. Hue is computed by a single
// helper shared by both cylindrical spaces so the two always agree on the
// same RGB input, including the seam at 360 degrees.
//
// At zero saturation hue is undefined. Any conversion through RGB resets it
// to 0. Callers that need to keep a hue while saturation is zero (the
// picker's hue/saturation map does) must hold the Hsv value themselves and
// edit it directly.
//
// # DynamicColor
//
// DynamicColor is an immutable (components, space) pair. Every setter
// returns a new value, so a DynamicColor can be shared freely between the
// model, the terminal UI and the sync server.
//
//	c := color.White()                      // RGB 255,255,255
//	c = c.SetColorSpace(color.HSL)          // HSL 0,0,100
//	c = c.SetFloats(color.Triple{0, 1, 0.5})
//	rgb := color.ToColor[color.Rgb](c)      // Rgb{255, 0, 0}
package color
