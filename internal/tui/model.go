package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/logging"
	"github.com/muurk/colorpick/internal/picker"
	"github.com/muurk/colorpick/internal/ui"
)

const (
	inputCount = int(picker.Hex) + 1
	// mapFocus is the focus index of the saturation/value plane.
	mapFocus = inputCount

	// Cursor steps for keyboard dragging
	svStep = 0.05
	// hueSteps divides the hue circle into 5 degree steps.
	hueSteps = 72
)

// updateQueue collects field updates emitted by the picker so the model can
// copy them into its text inputs after each event. It is shared by copies
// of the value-receiver Model.
type updateQueue struct {
	updates []picker.FieldUpdate
}

func (q *updateQueue) push(u picker.FieldUpdate) {
	q.updates = append(q.updates, u)
}

func (q *updateQueue) drain() []picker.FieldUpdate {
	updates := q.updates
	q.updates = nil
	return updates
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the function used to copy the hex code.
func WithClipboard(copyFn func(string) error) Option {
	return func(m *Model) {
		m.copy = copyFn
	}
}

// Model is the interactive picker screen.
type Model struct {
	picker *picker.Picker
	queue  *updateQueue

	inputs [inputCount]textinput.Model
	focus  int

	keys keyMap
	help help.Model
	copy func(string) error

	status    string
	statusErr bool
	quitting  bool

	Width  int
	Height int
}

// New creates the picker screen for initial, showing numeric fields with
// precision decimals. The first component field starts focused.
func New(initial color.DynamicColor, precision int, opts ...Option) Model {
	queue := &updateQueue{}
	p := picker.New(
		picker.WithColor(initial),
		picker.WithPrecision(precision),
		picker.WithListener(queue.push),
	)

	m := Model{
		picker: p,
		queue:  queue,
		keys:   defaultKeyMap(),
		help:   help.New(),
		copy:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}

	for _, id := range picker.AllFields() {
		input := textinput.New()
		input.Prompt = ""
		input.Width = InputWidth
		input.CharLimit = 16
		text, _ := p.Text(id)
		input.SetValue(text)
		m.inputs[id] = input
	}
	m.inputs[picker.Hex].Prompt = "#"
	m.inputs[picker.Hex].CharLimit = 7
	m.inputs[0].Focus()

	return m
}

// Color returns the current picker color.
func (m Model) Color() color.DynamicColor {
	return m.picker.Color()
}

// Picker exposes the underlying session.
func (m Model) Picker() *picker.Picker {
	return m.picker
}

// Focused returns the focused field, or false while the plane has focus.
func (m Model) Focused() (picker.FieldID, bool) {
	if m.focus == mapFocus {
		return 0, false
	}
	return picker.FieldID(m.focus), true
}

// InputValue returns the text currently shown in the input of id.
func (m Model) InputValue(id picker.FieldID) string {
	if !id.Valid() {
		return ""
	}
	return m.inputs[id].Value()
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keyboard input and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1)
		case key.Matches(msg, m.keys.Space):
			m.cycleSpace()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyHex()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.focus == mapFocus {
			m.updateMap(msg)
			return m, nil
		}
		return m.updateInput(msg)
	}

	if m.focus < inputCount {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	if m.focus < inputCount {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + inputCount + 1) % (inputCount + 1)
	if m.focus < inputCount {
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

// updateInput forwards a key to the focused input and feeds changed text to
// the picker.
func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	id := picker.FieldID(m.focus)
	before := m.inputs[id].Value()

	var cmd tea.Cmd
	m.inputs[id], cmd = m.inputs[id].Update(msg)

	if after := m.inputs[id].Value(); after != before {
		m.picker.Input(id, after)
		m.applyUpdates()
	}
	return m, cmd
}

func (m *Model) updateMap(msg tea.KeyMsg) {
	f := m.picker.Hsv().Floats()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.picker.SetSaturation(f[1] - svStep)
	case key.Matches(msg, m.keys.Right):
		m.picker.SetSaturation(f[1] + svStep)
	case key.Matches(msg, m.keys.Up):
		m.picker.SetValue(f[2] + svStep)
	case key.Matches(msg, m.keys.Down):
		m.picker.SetValue(f[2] - svStep)
	case key.Matches(msg, m.keys.HueDown):
		m.picker.SetHue(stepHue(f[0], -1))
	case key.Matches(msg, m.keys.HueUp):
		m.picker.SetHue(stepHue(f[0], 1))
	default:
		return
	}
	m.applyUpdates()
}

// stepHue moves a hue fraction by delta steps on the hue grid, wrapping
// around the circle.
func stepHue(fraction float64, delta int) float64 {
	step := int(math.Round(fraction*hueSteps)) + delta
	return float64((step%hueSteps+hueSteps)%hueSteps) / hueSteps
}

func (m *Model) cycleSpace() {
	next := m.picker.Color().Space().Next()
	m.picker.SetColorSpace(next)
	m.applyUpdates()
	m.setStatus(fmt.Sprintf("Color space: %s", next), false)
}

func (m *Model) copyHex() {
	code := "#" + m.picker.HexCode()
	if err := m.copy(code); err != nil {
		logging.Warn("Clipboard copy failed", zap.Error(err))
		m.setStatus(fmt.Sprintf("%s Copy failed: %v", ui.FailureMarker, err), true)
		return
	}
	m.setStatus(fmt.Sprintf("%s Copied %s", ui.SuccessMarker, code), false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// applyUpdates copies overwritten field texts into the inputs.
func (m *Model) applyUpdates() {
	for _, u := range m.queue.drain() {
		if !u.Field.Valid() {
			continue
		}
		m.inputs[u.Field].SetValue(u.Text)
	}
}

// View renders the picker screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	c := m.picker.Color()
	cursor := m.picker.Hsv()

	mapStyle := MapStyle
	if m.focus == mapFocus {
		mapStyle = FocusedMapStyle
	}
	plane := mapStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		renderSurface(cursor, SurfaceWidth, SurfaceHeight),
		renderHueSlider(cursor, SurfaceWidth),
	))

	swatch := ui.RenderSwatch(c.ToRgb(), SwatchWidth, SurfaceHeight/2)
	top := lipgloss.JoinHorizontal(lipgloss.Top, plane, "  ", swatch)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n")
	b.WriteString(top)
	b.WriteString("\n\n")
	b.WriteString(m.renderSpaces(c.Space()))
	b.WriteString("\n\n")
	b.WriteString(m.renderFields(c.Space().Info()))

	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		b.WriteString("\n\n")
		b.WriteString(style.Render(m.status))
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderSpaces(active color.Space) string {
	entries := make([]string, 0, len(color.AllSpaces()))
	for _, s := range color.AllSpaces() {
		style := SpaceStyle
		if s == active {
			style = ActiveSpaceStyle
		}
		entries = append(entries, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, entries...)
}

func (m Model) renderFields(info color.Info) string {
	rows := make([]string, 0, 4)
	for axis := 0; axis < 3; axis++ {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Render(info.Labels[axis]),
			m.renderInput(picker.Component0+picker.FieldID(axis)),
			UnitStyle.Render(info.Units[axis]),
			"  ",
			m.renderInput(picker.Float0+picker.FieldID(axis)),
		))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		LabelStyle.Render("Hex"),
		m.renderInput(picker.Hex),
	))
	return strings.Join(rows, "\n")
}

func (m Model) renderInput(id picker.FieldID) string {
	marker := " "
	if m.focus == int(id) {
		marker = "›"
	}
	return marker + m.inputs[id].View()
}

// Run shows the picker until the user quits and returns the final color.
func Run(initial color.DynamicColor, precision int) (color.DynamicColor, error) {
	program := tea.NewProgram(New(initial, precision), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return initial, fmt.Errorf("picker UI failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return initial, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Color(), nil
}
