package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2docx/internal/logger"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - MD2DOCX_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		vars        map[string]string
		wantHost    string
		wantTimeout time.Duration
		wantWarn    string
	}{
		{
			name: "unset",
			vars: map[string]string{},
		},
		{
			name:        "valid values",
			vars:        map[string]string{"MD2DOCX_HOST": " LibreOffice ", "MD2DOCX_TIMEOUT": "45s"},
			wantHost:    "libreoffice",
			wantTimeout: 45 * time.Second,
		},
		{
			name:     "unknown host ignored",
			vars:     map[string]string{"MD2DOCX_HOST": "pages"},
			wantWarn: "MD2DOCX_HOST",
		},
		{
			name:     "bad timeout ignored",
			vars:     map[string]string{"MD2DOCX_TIMEOUT": "-1s"},
			wantWarn: "MD2DOCX_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			te := newTestEnv(nil, tt.vars)
			got := loadEnvConfig(te.Environment, logger.New(&logs, log.DebugLevel))

			if got.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", got.Host, tt.wantHost)
			}
			if got.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v, want %v", got.Timeout, tt.wantTimeout)
			}
			if tt.wantWarn == "" && logs.Len() > 0 {
				t.Errorf("unexpected log output: %s", logs.String())
			}
			if tt.wantWarn != "" && !strings.Contains(logs.String(), tt.wantWarn) {
				t.Errorf("log = %q, want warning naming %s", logs.String(), tt.wantWarn)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	te := newTestEnv(nil, map[string]string{
		"MD2DOCX_HOST":        "word",
		"MD2DOCX_SOFFICE_BIN": "/opt/soffice",
		"MD2DOCX_HOTS":        "wps",
		"HOME":                "/home/u",
	})

	var buf bytes.Buffer
	warnUnknownEnvVars(te.Environment, &buf)

	out := buf.String()
	if !strings.Contains(out, "MD2DOCX_HOTS") {
		t.Errorf("output = %q, want warning for MD2DOCX_HOTS", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("output = %q, want exactly one warning", out)
	}
}
