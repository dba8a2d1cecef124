package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/fieldsync"
)

// CurrentVersion is the settings file format version.
const CurrentVersion = 1

// MaxPrecision bounds the number of decimal places shown in numeric fields.
const MaxPrecision = 6

var (
	// ErrUnsupportedVersion is returned for settings files written by an
	// incompatible release.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrUnknownKey is returned by Get and Set for keys that are not settings.
	ErrUnknownKey = errors.New("unknown config key")
)

// Settings is the persisted user configuration.
type Settings struct {
	Version    int            `koanf:"version" yaml:"version"`
	ColorSpace string         `koanf:"color_space" yaml:"color_space"`
	LastColor  string         `koanf:"last_color" yaml:"last_color"`
	Precision  int            `koanf:"precision" yaml:"precision"`
	Server     ServerSettings `koanf:"server" yaml:"server"`
}

// ServerSettings configures the live sync server.
type ServerSettings struct {
	Addr      string `koanf:"addr" yaml:"addr"`
	Advertise bool   `koanf:"advertise" yaml:"advertise"`
	// RateLimit is the number of edits per second accepted from one client.
	RateLimit int `koanf:"rate_limit" yaml:"rate_limit"`
	// TLSCert and TLSKey are PEM files. With both set the server speaks wss.
	TLSCert string `koanf:"tls_cert" yaml:"tls_cert,omitempty"`
	TLSKey  string `koanf:"tls_key" yaml:"tls_key,omitempty"`
}

// Default returns settings with built-in defaults: white in RGB, two decimal
// places, and a server on :7878.
func Default() *Settings {
	return &Settings{
		Version:    CurrentVersion,
		ColorSpace: "rgb",
		LastColor:  "ffffff",
		Precision:  2,
		Server: ServerSettings{
			Addr:      ":7878",
			Advertise: false,
			RateLimit: 120,
		},
	}
}

// Validate checks every field and returns the first problem found.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, s.Version, CurrentVersion)
	}
	if _, err := color.ParseSpace(s.ColorSpace); err != nil {
		return fmt.Errorf("invalid color_space: %w", err)
	}
	if _, err := color.RgbFromHexCode(fieldsync.NormalizeHex(s.LastColor)); err != nil {
		return fmt.Errorf("invalid last_color: %w", err)
	}
	if s.Precision < 0 || s.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, s.Precision)
	}
	if s.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if s.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative, got %d", s.Server.RateLimit)
	}
	return nil
}

// Space returns the configured color space, falling back to RGB.
func (s *Settings) Space() color.Space {
	space, err := color.ParseSpace(s.ColorSpace)
	if err != nil {
		return color.RGB
	}
	return space
}

// Color returns the remembered color in the configured space. Invalid
// stored values yield white.
func (s *Settings) Color() color.DynamicColor {
	rgb, err := color.RgbFromHexCode(fieldsync.NormalizeHex(s.LastColor))
	if err != nil {
		return color.White().SetColorSpace(s.Space())
	}
	return color.DynamicFromColor(rgb).SetColorSpace(s.Space())
}

// Remember stores c as the last color.
func (s *Settings) Remember(c color.DynamicColor) {
	s.ColorSpace = strings.ToLower(c.Space().String())
	s.LastColor = c.HexCode()
}

// Keys returns the settings keys accepted by Get and Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(accessors))
	for k := range accessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type accessor struct {
	get func(*Settings) string
	set func(*Settings, string) error
}

var accessors = map[string]accessor{
	"color_space": {
		get: func(s *Settings) string { return s.ColorSpace },
		set: func(s *Settings, v string) error {
			space, err := color.ParseSpace(v)
			if err != nil {
				return err
			}
			s.ColorSpace = strings.ToLower(space.String())
			return nil
		},
	},
	"last_color": {
		get: func(s *Settings) string { return s.LastColor },
		set: func(s *Settings, v string) error {
			code := fieldsync.NormalizeHex(v)
			if _, err := color.RgbFromHexCode(code); err != nil {
				return err
			}
			s.LastColor = code
			return nil
		},
	},
	"precision": {
		get: func(s *Settings) string { return strconv.Itoa(s.Precision) },
		set: func(s *Settings, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("precision must be an integer: %w", err)
			}
			if n < 0 || n > MaxPrecision {
				return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, n)
			}
			s.Precision = n
			return nil
		},
	},
	"server.addr": {
		get: func(s *Settings) string { return s.Server.Addr },
		set: func(s *Settings, v string) error {
			if v == "" {
				return errors.New("server.addr must not be empty")
			}
			s.Server.Addr = v
			return nil
		},
	},
	"server.advertise": {
		get: func(s *Settings) string { return strconv.FormatBool(s.Server.Advertise) },
		set: func(s *Settings, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("server.advertise must be true or false: %w", err)
			}
			s.Server.Advertise = b
			return nil
		},
	},
	"server.rate_limit": {
		get: func(s *Settings) string { return strconv.Itoa(s.Server.RateLimit) },
		set: func(s *Settings, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("server.rate_limit must be an integer: %w", err)
			}
			if n < 0 {
				return fmt.Errorf("server.rate_limit must not be negative, got %d", n)
			}
			s.Server.RateLimit = n
			return nil
		},
	},
	"server.tls_cert": {
		get: func(s *Settings) string { return s.Server.TLSCert },
		set: func(s *Settings, v string) error {
			s.Server.TLSCert = strings.TrimSpace(v)
			return nil
		},
	},
	"server.tls_key": {
		get: func(s *Settings) string { return s.Server.TLSKey },
		set: func(s *Settings, v string) error {
			s.Server.TLSKey = strings.TrimSpace(v)
			return nil
		},
	},
}

// Get returns the value stored under key as text.
func (s *Settings) Get(key string) (string, error) {
	a, ok := accessors[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return a.get(s), nil
}

// Set parses value and stores it under key. The settings are unchanged on
// error.
func (s *Settings) Set(key, value string) error {
	a, ok := accessors[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err := a.set(s, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}
