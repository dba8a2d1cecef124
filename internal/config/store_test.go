package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestConfigDir(t *testing.T) {
	configDir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "colorpick") {
		t.Errorf("ConfigDir() = %v, should contain 'colorpick'", configDir)
	}

	if runtime.GOOS == "darwin" && !strings.Contains(configDir, ".config") {
		t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies to Linux and other Unix systems")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	configDir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if configDir != filepath.Join("/tmp/xdg", "colorpick") {
		t.Errorf("ConfigDir() = %v, want /tmp/xdg/colorpick", configDir)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	configPath, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("ConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Setenv(PathEnvVar, "/somewhere/else.yaml")
	configPath, err = ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if configPath != "/somewhere/else.yaml" {
		t.Errorf("ConfigPath() = %v, want override", configPath)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *s != *Default() {
		t.Errorf("LoadFrom(missing) = %+v, want defaults", *s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	s := Default()
	s.ColorSpace = "hsv"
	s.LastColor = "123abc"
	s.Precision = 3
	s.Server.Addr = "127.0.0.1:9999"
	s.Server.Advertise = true
	s.Server.RateLimit = 10

	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# colorpick settings") {
		t.Errorf("saved file missing header:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temporary file left behind: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *loaded != *s {
		t.Errorf("LoadFrom() = %+v, want %+v", *loaded, *s)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	path := writeFile(t, "version: 1\nprecision: 0\nserver:\n  advertise: true\n")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if s.Precision != 0 {
		t.Errorf("Precision = %d, want 0", s.Precision)
	}
	if !s.Server.Advertise {
		t.Error("Server.Advertise = false, want true")
	}
	if s.Server.Addr != ":7878" {
		t.Errorf("Server.Addr = %q, want default :7878", s.Server.Addr)
	}
	if s.LastColor != "ffffff" {
		t.Errorf("LastColor = %q, want default", s.LastColor)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	path := writeFile(t, "version: 1\nprecision: 1\n")

	t.Setenv("COLORPICK_PRECISION", "4")
	t.Setenv("COLORPICK_COLOR_SPACE", "hsl")
	t.Setenv("COLORPICK_SERVER_ADDR", ":9000")
	t.Setenv("COLORPICK_SERVER_RATE_LIMIT", "7")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if s.Precision != 4 {
		t.Errorf("Precision = %d, want 4 from environment", s.Precision)
	}
	if s.ColorSpace != "hsl" {
		t.Errorf("ColorSpace = %q, want hsl", s.ColorSpace)
	}
	if s.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", s.Server.Addr)
	}
	if s.Server.RateLimit != 7 {
		t.Errorf("Server.RateLimit = %d, want 7", s.Server.RateLimit)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"future version", "version: 2\n", ErrUnsupportedVersion},
		{"bad space", "version: 1\ncolor_space: cmyk\n", nil},
		{"bad hex", "version: 1\nlast_color: nothex\n", nil},
		{"malformed yaml", "version: [1\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("LoadFrom() should fail")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("LoadFrom() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"COLORPICK_PRECISION":         "precision",
		"COLORPICK_LAST_COLOR":        "last_color",
		"COLORPICK_SERVER_ADDR":       "server.addr",
		"COLORPICK_SERVER_RATE_LIMIT": "server.rate_limit",
		"COLORPICK_SERVER_TLS_CERT":   "server.tls_cert",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}
