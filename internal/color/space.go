package color

import (
	"fmt"
	"math"
	"strings"
)

// Triple is an ordered set of three color components.
type Triple [3]float64

// Space identifies one of the supported color encodings.
type Space int

const (
	RGB Space = iota
	HSL
	HSV
)

// Info holds the display metadata of a color space. An empty unit means
// the axis has none.
type Info struct {
	Labels [3]string
	Units  [3]string
}

var spaceInfo = map[Space]Info{
	RGB: {Labels: [3]string{"R", "G", "B"}},
	HSL: {Labels: [3]string{"H", "S", "L"}, Units: [3]string{"°", "%", "%"}},
	HSV: {Labels: [3]string{"H", "S", "V"}, Units: [3]string{"°", "%", "%"}},
}

var spaceMaxes = map[Space]Triple{
	RGB: {255, 255, 255},
	HSL: {360, 100, 100},
	HSV: {360, 100, 100},
}

// AllSpaces returns the selectable spaces in menu order.
func AllSpaces() []Space {
	return []Space{RGB, HSL, HSV}
}

// Valid reports whether s is one of the supported spaces.
func (s Space) Valid() bool {
	_, ok := spaceMaxes[s]
	return ok
}

func (s Space) String() string {
	switch s {
	case RGB:
		return "RGB"
	case HSL:
		return "HSL"
	case HSV:
		return "HSV"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// ParseSpace parses a space name case-insensitively.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rgb":
		return RGB, nil
	case "hsl":
		return HSL, nil
	case "hsv":
		return HSV, nil
	default:
		return 0, fmt.Errorf("unknown color space %q (expected rgb, hsl or hsv)", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Space) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid color space %d", int(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Space) UnmarshalText(text []byte) error {
	parsed, err := ParseSpace(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Next returns the space after s in menu order, wrapping around.
func (s Space) Next() Space {
	spaces := AllSpaces()
	for i, candidate := range spaces {
		if candidate == s {
			return spaces[(i+1)%len(spaces)]
		}
	}
	return RGB
}

// Info returns labels and units for the space.
func (s Space) Info() Info {
	return spaceInfo[s]
}

// Maxes returns the component maxima of the space.
func (s Space) Maxes() Triple {
	return spaceMaxes[s]
}

// Clamp clamps each component to [0, max] for the space. NaN becomes 0.
func (s Space) Clamp(components Triple) Triple {
	maxes := s.Maxes()
	return Triple{
		clamp(components[0], maxes[0]),
		clamp(components[1], maxes[1]),
		clamp(components[2], maxes[2]),
	}
}

// ToFloats normalizes native components to [0,1] per axis.
func (s Space) ToFloats(components Triple) Triple {
	maxes := s.Maxes()
	c := s.Clamp(components)
	return Triple{c[0] / maxes[0], c[1] / maxes[1], c[2] / maxes[2]}
}

// FromFloats clamps floats to [0,1] and scales them to native components.
func (s Space) FromFloats(floats Triple) Triple {
	maxes := s.Maxes()
	return Triple{
		clamp(floats[0], 1) * maxes[0],
		clamp(floats[1], 1) * maxes[1],
		clamp(floats[2], 1) * maxes[2],
	}
}

// ToRgb converts native components of the space to Rgb.
func (s Space) ToRgb(components Triple) Rgb {
	return FromComponents(s, components).ToRgb()
}

// FromRgb converts rgb to native components of the space.
func (s Space) FromRgb(rgb Rgb) Triple {
	return FromRgb(s, rgb).Components()
}

func clamp(v, max float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, max))
}
