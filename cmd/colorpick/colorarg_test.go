package main

import (
	"testing"

	"github.com/muurk/colorpick/internal/color"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"#ff0000", "hex"},
		{"ff8000", "hex"},
		{"  #abc  ", "hex"},
		{"255,0,0", "rgb"},
		{"255 0 0", "rgb"},
		{"hsl(0, 100%, 50%)", "hsl"},
		{"HSV(1,2,3)", "hsv"},
		{"abcdeg", "rgb"},
	}
	for _, tt := range tests {
		if got := detectFormat(tt.value); got != tt.want {
			t.Errorf("detectFormat(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		format    string
		wantHex   string
		wantSpace color.Space
	}{
		{"hex with hash", "#FF0000", "", "ff0000", color.RGB},
		{"bare hex", "00ff00", "hex", "00ff00", color.RGB},
		{"rgb commas", "0,0,255", "rgb", "0000ff", color.RGB},
		{"hsl spaces", "0 100 50", "hsl", "ff0000", color.HSL},
		{"hsl function", "hsl(120, 100%, 50%)", "", "00ff00", color.HSL},
		{"hsv degrees", "240°,100,100", "HSV", "0000ff", color.HSV},
		{"clamped", "300,-5,0", "rgb", "ff0000", color.RGB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parseColor(tt.value, tt.format)
			if err != nil {
				t.Fatalf("parseColor(%q, %q) error = %v", tt.value, tt.format, err)
			}
			if got := c.HexCode(); got != tt.wantHex {
				t.Errorf("HexCode() = %q, want %q", got, tt.wantHex)
			}
			if got := c.Space(); got != tt.wantSpace {
				t.Errorf("Space() = %v, want %v", got, tt.wantSpace)
			}
		})
	}
}

func TestParseColor_Errors(t *testing.T) {
	tests := []struct {
		value  string
		format string
	}{
		{"1,2", "rgb"},
		{"1,2,3,4", "rgb"},
		{"a,b,c", "rgb"},
		{"zzzzzz", "hex"},
		{"#12345", ""},
		{"1,2,3", "cmyk"},
	}
	for _, tt := range tests {
		if _, err := parseColor(tt.value, tt.format); err == nil {
			t.Errorf("parseColor(%q, %q) error = nil, want error", tt.value, tt.format)
		}
	}
}

func TestFormatColor(t *testing.T) {
	red := color.DynamicFromColor(color.NewRgb(255, 0, 0))

	tests := []struct {
		format string
		want   string
	}{
		{"hex", "#ff0000"},
		{"rgb", "rgb(255, 0, 0)"},
		{"hsl", "hsl(0, 100, 50)"},
		{"HSV", "hsv(0, 100, 100)"},
	}
	for _, tt := range tests {
		got, err := formatColor(red, tt.format, 2)
		if err != nil {
			t.Fatalf("formatColor(%q) error = %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("formatColor(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}

	if _, err := formatColor(red, "lab", 2); err == nil {
		t.Error("formatColor(lab) error = nil, want error")
	}
}

func TestFormatColor_Precision(t *testing.T) {
	c := color.NewDynamic(color.Triple{12.3456, 0, 0}, color.RGB)

	got, err := formatColor(c, "rgb", 2)
	if err != nil {
		t.Fatalf("formatColor() error = %v", err)
	}
	if want := "rgb(12.35, 0, 0)"; got != want {
		t.Errorf("formatColor() = %q, want %q", got, want)
	}
}

func TestFormatFloats(t *testing.T) {
	red := color.DynamicFromColor(color.NewRgb(255, 0, 0))
	if got, want := formatFloats(red, 2), "1.0, 0.0, 0.0"; got != want {
		t.Errorf("formatFloats() = %q, want %q", got, want)
	}
}
