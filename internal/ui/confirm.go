package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm shows a warning box listing what is about to happen and asks for
// "yes" on in. Anything else, including EOF, declines.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string) bool {
	width := GetTerminalWidth()

	lines := []string{"", WarningTitleStyle.Render("⚠  " + title), ""}
	for _, warning := range warnings {
		lines = append(lines, ResultValueStyle.Render("• "+warning))
	}
	lines = append(lines, "")

	box := boxStyle(lipgloss.DoubleBorder(), WarningColor, width).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	fmt.Fprintln(out, box)
	fmt.Fprint(out, WarningTitleStyle.Render(`Type "yes" to continue: `))

	answer, err := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
	if err != nil && answer == "" {
		fmt.Fprintln(out, HintItemStyle.Render("  Cancelled."))
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	fmt.Fprintln(out, HintItemStyle.Render("  Cancelled."))
	return false
}
