package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/colorpick/internal/ui"
)

// Application branding
const AppName = "COLORPICK"

// Layout constants
const (
	SurfaceWidth  = 36 // Saturation/value plane columns
	SurfaceHeight = 10 // Saturation/value plane rows
	SwatchWidth   = 14
	InputWidth    = 8
)

var (
	// Title bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// Frame around the plane and slider; highlighted while the map has focus
	MapStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.MutedColor)

	FocusedMapStyle = MapStyle.
			BorderForeground(ui.PrimaryColor)

	// Axis labels such as "R" or "H"
	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true).
			Width(3)

	// Units shown after component inputs
	UnitStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Width(2)

	// Space selector entries
	SpaceStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Padding(0, 1)

	ActiveSpaceStyle = lipgloss.NewStyle().
				Foreground(ui.TextColor).
				Background(ui.PrimaryColor).
				Bold(true).
				Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ui.ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			MarginTop(1)
)
