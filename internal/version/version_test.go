package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestInitFallbacks(t *testing.T) {
	if Version == "" {
		t.Error("Version should never be empty after init")
	}
	if Commit == "" {
		t.Error("Commit should never be empty after init")
	}
}

func TestApplyBuildSettings(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })

	tests := []struct {
		name        string
		settings    []debug.BuildSetting
		wantVersion string
		wantCommit  string
	}{
		{
			name: "clean checkout",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
				{Key: "vcs.modified", Value: "false"},
			},
			wantVersion: "dev-20260304",
			wantCommit:  "0123456",
		},
		{
			name: "dirty short revision",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantVersion: "",
			wantCommit:  "abc-dirty",
		},
		{
			name:     "no vcs info",
			settings: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit = "", ""
			applyBuildSettings(tt.settings)

			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestApplyBuildSettings_KeepsLdflags(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })

	Version, Commit = "v1.2.3", "feedbee"
	applyBuildSettings([]debug.BuildSetting{{Key: "vcs.revision", Value: "0000000000"}})

	if Version != "v1.2.3" || Commit != "feedbee" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}

func TestApplyModuleVersion(t *testing.T) {
	savedVersion := Version
	t.Cleanup(func() { Version = savedVersion })

	tests := []struct {
		module string
		want   string
	}{
		{"v0.4.1", "v0.4.1"},
		{"(devel)", ""},
		{"", ""},
	}
	for _, tt := range tests {
		Version = ""
		applyModuleVersion(tt.module)
		if Version != tt.want {
			t.Errorf("applyModuleVersion(%q): Version = %q, want %q", tt.module, Version, tt.want)
		}
	}

	Version = "v9.9.9"
	applyModuleVersion("v0.4.1")
	if Version != "v9.9.9" {
		t.Errorf("applyModuleVersion() overwrote ldflags version: %q", Version)
	}
}

func TestFull(t *testing.T) {
	if !strings.Contains(Full(), Version) || !strings.Contains(Full(), "commit: "+Commit) {
		t.Errorf("Full() = %q", Full())
	}
	if !strings.HasPrefix(Detailed(), "colorpick "+Version) {
		t.Errorf("Detailed() = %q", Detailed())
	}
}
