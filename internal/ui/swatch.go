package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/colorpick/internal/color"
)

// Relative luminance above which dark text is used on a swatch.
const lightSwatchThreshold = 0.55

// ContrastColor returns black or white, whichever reads better on c.
func ContrastColor(c color.Rgb) lipgloss.Color {
	f := c.Floats()
	luminance := 0.2126*f[0] + 0.7152*f[1] + 0.0722*f[2]
	if luminance > lightSwatchThreshold {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

// SwatchStyle returns a style that paints text on c.
func SwatchStyle(c color.Rgb) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#" + c.AsHexCode())).
		Foreground(ContrastColor(c))
}

// RenderSwatch renders a width x height block of c with its #hex label
// centered on the middle row.
func RenderSwatch(c color.Rgb, width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	label := "#" + c.AsHexCode()
	if len(label) > width {
		label = ""
	}

	style := SwatchStyle(c).Width(width).Align(lipgloss.Center)

	rows := make([]string, height)
	for i := range rows {
		text := ""
		if i == height/2 {
			text = label
		}
		rows[i] = style.Render(text)
	}
	return strings.Join(rows, "\n")
}
