package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/ui"
)

const (
	cursorMarker = "◆"
	hueMarker    = "▲"
)

// cellIndex maps a fraction in [0,1] onto one of n cells.
func cellIndex(fraction float64, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(math.Round(fraction * float64(n-1)))
	return max(0, min(n-1, i))
}

// cellFraction is the inverse of cellIndex.
func cellFraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func cell(c color.Rgb, text string) string {
	if text == "" {
		text = " "
	}
	return ui.SwatchStyle(c).Render(text)
}

// renderSurface draws the saturation/value plane at the cursor's hue.
// Saturation grows to the right and value grows upwards.
func renderSurface(cursor color.Hsv, width, height int) string {
	f := cursor.Floats()
	cursorX := cellIndex(f[1], width)
	cursorY := cellIndex(1-f[2], height)

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			c := color.HsvFromFloats(color.Triple{f[0], cellFraction(x, width), 1 - cellFraction(y, height)}).ToRgb()
			text := ""
			if x == cursorX && y == cursorY {
				text = cursorMarker
			}
			b.WriteString(cell(c, text))
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// renderHueSlider draws the fully saturated hue range with a marker under
// the cursor's hue.
func renderHueSlider(cursor color.Hsv, width int) string {
	hueX := cellIndex(cursor.Floats()[0], width)

	var bar, marker strings.Builder
	for x := 0; x < width; x++ {
		c := color.HsvFromFloats(color.Triple{cellFraction(x, width), 1, 1}).ToRgb()
		bar.WriteString(cell(c, ""))
		if x == hueX {
			marker.WriteString(hueMarker)
		} else {
			marker.WriteString(" ")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar.String(), marker.String())
}
