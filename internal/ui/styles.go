package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared by command output and the interactive picker
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - borders, focus
	SuccessColor = lipgloss.Color("#43BF6D") // Green - results
	ErrorColor   = lipgloss.Color("#FF5555") // Red - failures
	WarningColor = lipgloss.Color("#FFA500") // Orange - confirmations
	MutedColor   = lipgloss.Color("#626262") // Gray - keys, hints
	TextColor    = lipgloss.Color("#FFFFFF") // White - values
)

// Box widths are kept within these bounds regardless of the terminal.
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

var (
	// HeaderTitleStyle renders the upper-cased command title
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle renders the invoked command line
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle renders header detail keys such as "From:"
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle renders header detail values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle pads result keys so values line up
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	HintTitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)

	HintItemStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	ProgressLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)
)

// clampWidth bounds a box width to [MinTerminalWidth, MaxContentWidth].
func clampWidth(width int) int {
	return max(MinTerminalWidth, min(MaxContentWidth, width))
}

// GetTerminalWidth returns the stdout terminal width bounded by
// clampWidth. Non-terminals get MinTerminalWidth.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return clampWidth(width)
}

// IsTerminalWriter reports whether w is a terminal. Redrawing output such
// as progress bars is only written to terminals.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// boxStyle draws a border of the given kind and color. width is the outer
// width including the two border columns.
func boxStyle(border lipgloss.Border, c lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(c).
		Width(width - 2)
}

// HeaderBorderStyle frames command headers.
func HeaderBorderStyle(width int) lipgloss.Style {
	return boxStyle(lipgloss.RoundedBorder(), PrimaryColor, width)
}

// ResultBoxStyle frames success (green) and failure (red) results.
func ResultBoxStyle(c lipgloss.Color, width int) lipgloss.Style {
	return boxStyle(lipgloss.DoubleBorder(), c, width).Padding(0, 2)
}

// HintBoxStyle frames troubleshooting hints nested inside a result box.
func HintBoxStyle(width int) lipgloss.Style {
	return boxStyle(lipgloss.RoundedBorder(), MutedColor, width-6).Padding(0, 1)
}

// Divider renders a horizontal rule of width cells.
func Divider(width int) string {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", max(0, width)))
}
