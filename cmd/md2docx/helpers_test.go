package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/host"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake word processor
// ---------------------------------------------------------------------------

// fakeBackend saves a placeholder .docx instead of driving a real suite.
type fakeBackend struct {
	name    string
	missing bool
	saveErr error

	mu    sync.Mutex
	saved []string
}

var _ md2docx.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) Name() string        { return f.name }
func (f *fakeBackend) DisplayName() string { return "Fake " + f.name }

func (f *fakeBackend) Locate() (string, error) {
	if f.missing {
		return "", host.ErrNotFound
	}
	return "/opt/fake/" + f.name, nil
}

func (f *fakeBackend) Launch(context.Context) (md2docx.Application, error) {
	return &fakeApp{b: f}, nil
}

func (f *fakeBackend) savedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.saved...)
}

type fakeApp struct{ b *fakeBackend }

func (a *fakeApp) Open(_ context.Context, path string) (md2docx.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &fakeDoc{b: a.b}, nil
}

func (a *fakeApp) Quit() error { return nil }

type fakeDoc struct{ b *fakeBackend }

func (d *fakeDoc) SetMargins(context.Context, float64) error { return nil }

func (d *fakeDoc) SaveAs(_ context.Context, path string) error {
	if d.b.saveErr != nil {
		return d.b.saveErr
	}
	d.b.mu.Lock()
	d.b.saved = append(d.b.saved, path)
	d.b.mu.Unlock()
	return os.WriteFile(path, []byte("PK fake docx"), 0o600)
}

func (d *fakeDoc) Close() error { return nil }

var errFakeSave = errors.New("fake save failure")

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment
// ---------------------------------------------------------------------------

type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	opened []string
}

// newTestEnv builds a non-interactive environment with the given backends
// and environment variables.
func newTestEnv(backends []md2docx.Backend, vars map[string]string) *testEnv {
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Environment = &Environment{
		Stdin:      strings.NewReader(""),
		Stdout:     te.stdout,
		Stderr:     te.stderr,
		IsTerminal: func() bool { return false },
		Getenv:     func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		Backends: backends,
		Open: func(path string) error {
			te.opened = append(te.opened, path)
			return nil
		},
	}
	return te
}

// writeMarkdown creates name with content in a fresh directory.
func writeMarkdown(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

const sampleMarkdown = "# 关于开展检查的通知\n\n各单位：\n\n## 一、检查范围\n- 财务制度\n1. 自查\n"
