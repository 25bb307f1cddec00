package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit и BuildDate опциональны
	_ = GitCommit
	_ = BuildDate
}

func TestColorized(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Colorized(false); got != tt.want {
			t.Errorf("Colorized(false) for %q = %q, want %q", tt.version, got, tt.want)
		}
	}

	Version = "1.2.3-dev"
	got := Colorized(true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Colorized(true) must contain ANSI escapes: %q", got)
	}
	if !strings.HasSuffix(got, "-dev") {
		t.Errorf("suffix must stay plain: %q", got)
	}
}
