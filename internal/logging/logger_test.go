package logging

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitialize_WritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorpick.log")
	t.Setenv(LogFileEnvVar, path)

	if err := Initialize("debug"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(zap.NewNop())

	Info("hello from test")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"DEBUG":   zapcore.DebugLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogFieldSync(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	LogFieldSync("float0", "1.50", 1.5, false)

	entries := logs.FilterMessage("Field sync").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["field"] != "float0" || fields["overwritten"] != false {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestLogTLSHandshake(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	LogTLSHandshake("studio.local", tls.VersionTLS13, tls.TLS_AES_128_GCM_SHA256)

	entries := logs.FilterMessage("TLS handshake completed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["tls_version"] != "TLS 1.3" || fields["cipher_suite"] != "TLS_AES_128_GCM_SHA256" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestWsMessageTypeName(t *testing.T) {
	if got := wsMessageTypeName(1); got != "text" {
		t.Errorf("wsMessageTypeName(1) = %q, want text", got)
	}
	if got := wsMessageTypeName(42); got != "unknown(42)" {
		t.Errorf("wsMessageTypeName(42) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate() = %q", got)
	}
}
