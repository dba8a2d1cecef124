package floatfmt

import (
	"errors"
	"math"
	"testing"
)

func TestRoundDigits(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		digits int
		want   float64
	}{
		{"one decimal", 10.11, -1, 10.1},
		{"two decimals", 123.456, -2, 123.46},
		{"units", 111.1, 0, 111},
		{"tens", 111.1, 1, 110},
		{"hundreds", 111.1, 2, 100},
		{"half rounds away from zero", 2.5, 0, 3},
		{"negative value", -1.26, -1, -1.3},
		{"zero", 0, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundDigits(tt.x, tt.digits); got != tt.want {
				t.Errorf("RoundDigits(%v, %d) = %v, want %v", tt.x, tt.digits, got, tt.want)
			}
		})
	}
}

func TestNthDigit(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		n    int
		want uint8
	}{
		{"last integer digit", 123.0, 0, 3},
		{"first integer digit", 123.0, 2, 1},
		{"second fractional digit", 123.456, -2, 5},
		{"deep fractional digit", 123.000089, -5, 8},
		{"large integer", 100000000000000000000.0, 20, 1},
		{"out of range left", 123.0, 5, 0},
		{"out of range right", 123.4, -3, 0},
		{"sign ignored", -45.6, -1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NthDigit(tt.x, tt.n); got != tt.want {
				t.Errorf("NthDigit(%v, %d) = %d, want %d", tt.x, tt.n, got, tt.want)
			}
		})
	}
}

func TestNthDigit_NonDigitPanics(t *testing.T) {
	// Infinity renders as "+Inf", which has no digits to extract.
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("NthDigit(+Inf, 0) did not panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value = %T, want error", r)
		}
		var digitErr *DigitError
		if !errors.As(err, &digitErr) {
			t.Fatalf("panic value = %v, want *DigitError", err)
		}
	}()

	NthDigit(math.Inf(1), 0)
}

func TestDecimalPlaces(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{1, 0},
		{100, 0},
		{1.5, 1},
		{1.25, 2},
		{0.001, 3},
		{-3.75, 2},
		{123.000089, 6},
	}

	for _, tt := range tests {
		if got := DecimalPlaces(tt.x); got != tt.want {
			t.Errorf("DecimalPlaces(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestEqualAtDigits(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		digits int
		want   bool
	}{
		{"equal at two decimals", 1.0, 1.002, -2, true},
		{"differ at three decimals", 1.0, 1.002, -3, false},
		{"equal at ten thousands", 100150.0, 100000.0, 4, true},
		{"equal at units", 1.0, 1.1, 0, true},
		{"equal at one decimal", 0.0, 0.01, -1, true},
		{"differ at one decimal", 0.1, 0.2, -1, false},
		{"identical", 0.3, 0.3, -2, true},
		{"trailing zero text", 1.50, 1.5, -2, true},
		{"opposite signs", -0.5, 0.5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualAtDigits(tt.a, tt.b, tt.digits); got != tt.want {
				t.Errorf("EqualAtDigits(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.digits, got, tt.want)
			}
		})
	}
}

func TestUlpsEqual(t *testing.T) {
	a := 1000.0
	b := math.Nextafter(math.Nextafter(a, 2000), 2000)
	if !ulpsEqual(a, b) {
		t.Errorf("ulpsEqual(%v, %v) = false, want true for two ULPs apart", a, b)
	}
	if ulpsEqual(1000, 1001) {
		t.Error("ulpsEqual(1000, 1001) = true, want false")
	}
}

func TestFormatNatural(t *testing.T) {
	tests := []struct {
		x        float64
		min, max int
		want     string
	}{
		{1.23456, 1, 3, "1.235"},
		{1.23000, 1, 3, "1.23"},
		{1.00000, 1, 3, "1.0"},
		{255, 0, 2, "255"},
		{127.5, 0, 2, "127.5"},
		{0.333333, 1, 2, "0.33"},
		{0.999, 1, 2, "1.0"},
		{0, 1, 2, "0.0"},
		{360, 0, 2, "360"},
	}

	for _, tt := range tests {
		if got := FormatNatural(tt.x, tt.min, tt.max); got != tt.want {
			t.Errorf("FormatNatural(%v, %d, %d) = %q, want %q", tt.x, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestFormatter(t *testing.T) {
	format := Formatter(1, 2)
	if got := format(0.5); got != "0.5" {
		t.Errorf("Formatter(1, 2)(0.5) = %q, want %q", got, "0.5")
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"12.5", 12.5, true},
		{"  42  ", 42, true},
		{"\t0.25\n", 0.25, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"NaN", 0, false},
		{"-3", -3, true},
	}

	for _, tt := range tests {
		got, ok := ParseInput(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseInput(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseOr(t *testing.T) {
	if got := ParseOr("junk", 0); got != 0 {
		t.Errorf("ParseOr(junk, 0) = %v, want 0", got)
	}
	if got := ParseOr(" 7 ", 0); got != 7 {
		t.Errorf("ParseOr(' 7 ', 0) = %v, want 7", got)
	}
}
