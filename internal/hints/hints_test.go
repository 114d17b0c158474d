package hints

// Notes:
// - ForHostNotFound tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Replace the package-level IsInContainer and goos variables

import (
	"strings"
	"testing"
)

func stubPlatform(t *testing.T, os string, container bool) {
	t.Helper()
	origGOOS, origContainer := goos, IsInContainer
	t.Cleanup(func() { goos, IsInContainer = origGOOS, origContainer })
	goos = os
	IsInContainer = func() bool { return container }
}

// ---------------------------------------------------------------------------
// TestForHostNotFound - Platform-specific install hints
// ---------------------------------------------------------------------------

func TestForHostNotFound(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		container bool
		soffice   string
		want      []string
		notWant   []string
	}{
		{
			name: "windows suggests Word, WPS and LibreOffice",
			goos: "windows",
			want: []string{"Microsoft Word", "WPS Office", "LibreOffice", "MD2DOCX_SOFFICE_BIN", "--html-only"},
		},
		{
			name:    "linux suggests package manager",
			goos:    "linux",
			want:    []string{"package manager"},
			notWant: []string{"Microsoft Word"},
		},
		{
			name:      "container suggests image package",
			goos:      "linux",
			container: true,
			want:      []string{"libreoffice-writer"},
		},
		{
			name: "darwin suggests brew",
			goos: "darwin",
			want: []string{"brew install"},
		},
		{
			name:    "binary override already set",
			goos:    "linux",
			soffice: "/opt/soffice",
			notWant: []string{"MD2DOCX_SOFFICE_BIN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPlatform(t, tt.goos, tt.container)
			t.Setenv("MD2DOCX_SOFFICE_BIN", tt.soffice)

			hint := ForHostNotFound()

			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint = %q, want hint prefix", hint)
			}
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("hint = %q, want it to contain %q", hint, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(hint, nw) {
					t.Errorf("hint = %q, should not contain %q", hint, nw)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestForUnknownHost - Accepted host names
// ---------------------------------------------------------------------------

func TestForUnknownHost(t *testing.T) {
	t.Parallel()

	if got := ForUnknownHost(nil); got != "" {
		t.Errorf("ForUnknownHost(nil) = %q, want empty", got)
	}
	got := ForUnknownHost([]string{"auto", "word"})
	if !strings.Contains(got, "auto, word") {
		t.Errorf("ForUnknownHost() = %q, want joined names", got)
	}
}

// ---------------------------------------------------------------------------
// TestForConfigNotFound - Config path suggestion
// ---------------------------------------------------------------------------

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
		excludes string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
			excludes: "create",
		},
		{
			name:     "user config path suggested",
			paths:    []string{"office.yaml", "/home/u/.config/go-md2docx/office.yaml"},
			contains: "create /home/u/.config/go-md2docx/office.yaml",
		},
		{
			name:     "local paths only",
			paths:    []string{"office.yaml", "office.yml"},
			contains: "--config",
			excludes: "create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, tt.contains) {
				t.Errorf("hint = %q, want it to contain %q", hint, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("hint = %q, should not contain %q", hint, tt.excludes)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat_Consistency - Every hint shares the prefix
// ---------------------------------------------------------------------------

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := map[string]string{
		"ForTimeout":       ForTimeout(),
		"ForInputNotFound": ForInputNotFound(),
		"ForEncoding":      ForEncoding([]string{"utf-8", "gbk"}),
		"ForStyle":         ForStyle(),
	}

	for name, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("%s format inconsistent: %q", name, h)
		}
	}
	if !strings.Contains(hints["ForTimeout"], "--timeout") {
		t.Error("ForTimeout should mention --timeout")
	}
	if !strings.Contains(hints["ForEncoding"], "utf-8, gbk") {
		t.Error("ForEncoding should list encodings")
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
