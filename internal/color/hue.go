package color

import "math"

// hueFromRgb returns the normalized hue in [0,1) for normalized r, g, b.
// max is the largest channel and delta the chroma (max - min), which must
// be non-zero. The sector offset is wrapped with a modulo so a red maximum
// with g < b lands in [5/6, 1) and never at exactly 1.
func hueFromRgb(r, g, b, max, delta float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / delta
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h = math.Mod(h+6, 6)
	return h / 6
}

// hueSector maps a normalized hue onto [0,6), treating 1 as 0.
func hueSector(h float64) float64 {
	return math.Mod(h*6, 6)
}

func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
