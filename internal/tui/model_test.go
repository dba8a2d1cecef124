package tui

import (
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/picker"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, want Model", next)
		}
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func noClipboard(string) error { return nil }

func red() color.DynamicColor {
	return color.DynamicFromColor(color.NewRgb(255, 0, 0))
}

func TestNew(t *testing.T) {
	m := New(color.White(), 2, WithClipboard(noClipboard))

	id, ok := m.Focused()
	if !ok || id != picker.Component0 {
		t.Errorf("Focused() = %v, %v, want %v, true", id, ok, picker.Component0)
	}
	if !m.inputs[picker.Component0].Focused() {
		t.Error("first input is not focused")
	}

	tests := map[picker.FieldID]string{
		picker.Component0: "255",
		picker.Float0:     "1.0",
		picker.Hex:        "ffffff",
	}
	for id, want := range tests {
		if got := m.InputValue(id); got != want {
			t.Errorf("InputValue(%v) = %q, want %q", id, got, want)
		}
	}
}

func TestTypingUpdatesOtherFields(t *testing.T) {
	m := New(color.White(), 2, WithClipboard(noClipboard))

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyCtrlU},
		runes("1"), runes("2"), runes("8"),
	)

	if got := m.InputValue(picker.Component0); got != "128" {
		t.Errorf("InputValue(component0) = %q, want %q", got, "128")
	}
	if got := m.InputValue(picker.Float0); got != "0.5" {
		t.Errorf("InputValue(float0) = %q, want %q", got, "0.5")
	}
	if got := m.InputValue(picker.Hex); got != "80ffff" {
		t.Errorf("InputValue(hex) = %q, want %q", got, "80ffff")
	}
	if got := m.Color().Components(); got != (color.Triple{128, 255, 255}) {
		t.Errorf("Color().Components() = %v, want [128 255 255]", got)
	}
}

func TestClearedFieldIsKept(t *testing.T) {
	m := New(color.White(), 2, WithClipboard(noClipboard))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})

	if got := m.InputValue(picker.Component0); got != "" {
		t.Errorf("InputValue(component0) = %q, want empty", got)
	}
	if got := m.InputValue(picker.Hex); got != "00ffff" {
		t.Errorf("InputValue(hex) = %q, want %q", got, "00ffff")
	}
}

func TestFocusCycle(t *testing.T) {
	m := New(color.White(), 2, WithClipboard(noClipboard))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if id, ok := m.Focused(); !ok || id != picker.Component1 {
		t.Errorf("Focused() after tab = %v, %v, want %v, true", id, ok, picker.Component1)
	}
	if m.inputs[picker.Component0].Focused() {
		t.Error("component0 still focused after tab")
	}

	for range 6 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if _, ok := m.Focused(); ok {
		t.Error("Focused() reports a field, want the map")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if id, ok := m.Focused(); !ok || id != picker.Component0 {
		t.Errorf("Focused() after wrap = %v, %v, want %v, true", id, ok, picker.Component0)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if _, ok := m.Focused(); ok {
		t.Error("Focused() after shift+tab reports a field, want the map")
	}
}

func TestMapKeys(t *testing.T) {
	m := New(red(), 2, WithClipboard(noClipboard))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	f := m.Picker().Hsv().Floats()
	if math.Abs(f[2]-0.95) > 1e-9 {
		t.Errorf("value after down = %v, want 0.95", f[2])
	}
	if got := m.InputValue(picker.Hex); got != "f20000" {
		t.Errorf("InputValue(hex) = %q, want %q", got, "f20000")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	f = m.Picker().Hsv().Floats()
	if math.Abs(f[1]-0.95) > 1e-9 {
		t.Errorf("saturation after left = %v, want 0.95", f[1])
	}

	m, _ = send(t, m, runes("]"))
	if got := m.Picker().Hsv().H; math.Abs(got-5) > 1e-9 {
		t.Errorf("hue after ] = %v, want 5", got)
	}

	m, _ = send(t, m, runes("["))
	if got := m.Picker().Hsv().H; got != 0 {
		t.Errorf("hue after [ = %v, want 0", got)
	}

	m, _ = send(t, m, runes("["))
	if got := m.Picker().Hsv().H; math.Abs(got-355) > 1e-9 {
		t.Errorf("hue after [ at 0 = %v, want 355", got)
	}

	m, _ = send(t, m, runes("]"))
	if got := m.Picker().Hsv().H; got != 0 {
		t.Errorf("hue after ] at 355 = %v, want 0", got)
	}
}

func TestStepHue(t *testing.T) {
	tests := []struct {
		fraction float64
		delta    int
		want     float64
	}{
		{0, 1, 1.0 / 72},
		{0, -1, 71.0 / 72},
		{71.0 / 72, 1, 0},
		{1, 1, 1.0 / 72},
		{0.5, -1, 35.0 / 72},
		{0.501, 0, 0.5},
	}
	for _, tt := range tests {
		if got := stepHue(tt.fraction, tt.delta); got != tt.want {
			t.Errorf("stepHue(%v, %d) = %v, want %v", tt.fraction, tt.delta, got, tt.want)
		}
	}
}

func TestMapKeysIgnoredInFields(t *testing.T) {
	m := New(red(), 2, WithClipboard(noClipboard))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})

	if got := m.Picker().Hsv().Floats()[2]; got != 1 {
		t.Errorf("value = %v, want 1", got)
	}
	if got := m.InputValue(picker.Hex); got != "ff0000" {
		t.Errorf("InputValue(hex) = %q, want %q", got, "ff0000")
	}
}

func TestCycleSpace(t *testing.T) {
	m := New(color.White(), 2, WithClipboard(noClipboard))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if got := m.Color().Space(); got != color.HSL {
		t.Errorf("Space() = %v, want %v", got, color.HSL)
	}
	want := map[picker.FieldID]string{
		picker.Component0: "0",
		picker.Component1: "0",
		picker.Component2: "100",
		picker.Hex:        "ffffff",
	}
	for id, text := range want {
		if got := m.InputValue(id); got != text {
			t.Errorf("InputValue(%v) = %q, want %q", id, got, text)
		}
	}
	if !strings.Contains(m.Status(), "HSL") {
		t.Errorf("Status() = %q, want it to name HSL", m.Status())
	}
}

func TestCopyHex(t *testing.T) {
	var copied string
	m := New(red(), 2, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	if copied != "#ff0000" {
		t.Errorf("copied %q, want %q", copied, "#ff0000")
	}
	if !strings.Contains(m.Status(), "#ff0000") {
		t.Errorf("Status() = %q, want it to contain the hex code", m.Status())
	}
	if m.statusErr {
		t.Error("statusErr = true, want false")
	}
}

func TestCopyHexError(t *testing.T) {
	m := New(red(), 2, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	if !m.statusErr {
		t.Error("statusErr = false, want true")
	}
	if !strings.Contains(m.Status(), "no clipboard") {
		t.Errorf("Status() = %q, want it to contain the error", m.Status())
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := New(color.White(), 2, WithClipboard(noClipboard))
			m, cmd := send(t, m, msg)
			if cmd == nil {
				t.Fatal("Update() returned nil cmd, want tea.Quit")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
			if got := m.View(); got != "" {
				t.Errorf("View() after quit = %q, want empty", got)
			}
		})
	}
}

func TestView(t *testing.T) {
	m := New(red(), 2, WithClipboard(noClipboard))
	view := m.View()

	for _, want := range []string{AppName, "RGB", "HSL", "HSV", "#ff0000", "Hex", cursorMarker, hueMarker} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	m := New(color.White(), 2, WithClipboard(noClipboard))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Width != 120 || m.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.Width, m.Height)
	}
}
