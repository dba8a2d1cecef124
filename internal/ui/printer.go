package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line of a header or result box. Details render in
// the order given.
type Detail struct {
	Key   string
	Value string
}

// Printer provides methods for printing UI components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params []Detail) {
	p.Print(RenderHeader(title, command, params, p.width))
	p.Newline()
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Detail) {
	p.Print(RenderSuccessBox(title, details, p.width))
	p.Newline()
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Print(RenderErrorBox(title, err, troubleshooting, p.width))
	p.Newline()
}

// DetailsFromMap converts a map into details sorted by key.
func DetailsFromMap(m map[string]string) []Detail {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	details := make([]Detail, 0, len(keys))
	for _, k := range keys {
		details = append(details, Detail{Key: k, Value: m[k]})
	}
	return details
}

// detailLines renders "key: value" lines with the given styles.
func detailLines(details []Detail, keyStyle, valueStyle lipgloss.Style, indent string) []string {
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, keyStyle.Render(indent+d.Key+":")+" "+valueStyle.Render(d.Value))
	}
	return lines
}

// resultTitle renders the first line of a result box, e.g.
// "✓  SUCCESS  ─  Converted".
func resultTitle(style lipgloss.Style, marker, outcome, title string) string {
	return style.Render(fmt.Sprintf("   %s  %s  ─  %s", marker, outcome, title))
}

// RenderHeader renders the command title, the command line and, when
// given, a divider followed by params.
func RenderHeader(title, command string, params []Detail, width int) string {
	width = clampWidth(width)

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(title)),
		HeaderCommandStyle.Render(command),
	)
	if len(params) == 0 {
		return HeaderBorderStyle(width).Render(top)
	}

	lines := detailLines(params, HeaderParamKeyStyle, HeaderParamValueStyle, "")
	content := lipgloss.JoinVertical(lipgloss.Left, top, Divider(width-6), strings.Join(lines, "\n"))
	return HeaderBorderStyle(width).Render(content)
}

// RenderSuccessBox renders a green result box listing details.
func RenderSuccessBox(title string, details []Detail, width int) string {
	lines := []string{"", resultTitle(SuccessTitleStyle, SuccessMarker, "SUCCESS", title), ""}
	lines = append(lines, detailLines(details, ResultKeyStyle, ResultValueStyle, "   ")...)
	lines = append(lines, "")

	return ResultBoxStyle(SuccessColor, clampWidth(width)).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders a red result box with the error and a nested box
// of troubleshooting hints.
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	width = clampWidth(width)

	lines := []string{"", resultTitle(ErrorTitleStyle, FailureMarker, "FAILED", title), ""}
	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+err.Error()), "")
	}

	if len(troubleshooting) > 0 {
		hints := []string{HintTitleStyle.Render("Troubleshooting:"), ""}
		for _, tip := range troubleshooting {
			hints = append(hints, HintItemStyle.Render("  • "+tip))
		}
		lines = append(lines, HintBoxStyle(width).Render(strings.Join(hints, "\n")), "")
	}

	return ResultBoxStyle(ErrorColor, width).Render(strings.Join(lines, "\n"))
}
