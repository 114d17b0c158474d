package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx"
)

// ---------------------------------------------------------------------------
// TestRunCheck - Host report
// ---------------------------------------------------------------------------

func TestRunCheck(t *testing.T) {
	t.Parallel()

	backends := func() []md2docx.Backend {
		return []md2docx.Backend{
			&fakeBackend{name: "word", missing: true},
			&fakeBackend{name: "wps"},
			&fakeBackend{name: "libreoffice"},
		}
	}

	tests := []struct {
		name         string
		prefer       string
		wantStatus   string
		wantSelected string
	}{
		{"auto picks first installed", "", "ready", "wps"},
		{"preferred installed", "libreoffice", "ready", "libreoffice"},
		{"preferred missing", "word", "missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := runCheck(backends(), tt.prefer)
			if r.Status != tt.wantStatus || r.Selected != tt.wantSelected {
				t.Errorf("status/selected = %q/%q, want %q/%q", r.Status, r.Selected, tt.wantStatus, tt.wantSelected)
			}
			if len(r.Hosts) != 3 {
				t.Errorf("len(Hosts) = %d, want 3", len(r.Hosts))
			}
		})
	}

	t.Run("empty prefer reported as auto", func(t *testing.T) {
		t.Parallel()

		if r := runCheck(backends(), ""); r.Prefer != "auto" {
			t.Errorf("Prefer = %q, want auto", r.Prefer)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunCheckCmd - Output formats and exit codes
// ---------------------------------------------------------------------------

func TestRunCheckCmd(t *testing.T) {
	t.Parallel()

	t.Run("text ready", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv([]md2docx.Backend{
			&fakeBackend{name: "word", missing: true},
			&fakeBackend{name: "libreoffice"},
		}, nil)

		code := runCheckCmd(&cliFlags{}, te.Environment, "")
		if code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		out := te.stdout.String()
		for _, want := range []string{
			"[--]   Fake word: not found",
			"[OK] * Fake libreoffice (/opt/fake/libreoffice)",
			"Status: Ready (using libreoffice)",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("text missing", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv([]md2docx.Backend{&fakeBackend{name: "word", missing: true}}, nil)

		if code := runCheckCmd(&cliFlags{}, te.Environment, ""); code != ExitHost {
			t.Errorf("exit code = %d, want %d", code, ExitHost)
		}
		if !strings.Contains(te.stdout.String(), "Status: Not ready") {
			t.Errorf("output = %q, want not ready status", te.stdout.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv([]md2docx.Backend{&fakeBackend{name: "wps"}}, nil)
		flags := &cliFlags{host: hostFlags{checkApp: true, json: true}}

		if code := runCheckCmd(flags, te.Environment, "wps"); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}

		var got checkResult
		if err := json.Unmarshal(te.stdout.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, te.stdout.String())
		}
		if got.Status != "ready" || got.Selected != "wps" || got.Prefer != "wps" {
			t.Errorf("result = %+v", got)
		}
		if len(got.Hosts) != 1 || !got.Hosts[0].Available {
			t.Errorf("hosts = %+v, want one available", got.Hosts)
		}
	})
}
