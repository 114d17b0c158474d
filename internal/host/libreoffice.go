package host

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/process"
)

// EnvSofficeBin overrides LibreOffice discovery.
const EnvSofficeBin = "MD2DOCX_SOFFICE_BIN"

// sofficeWaitDelay bounds how long Wait lingers on inherited pipes after
// the converter is killed.
const sofficeWaitDelay = 5 * time.Second

// sofficeNames are looked up on PATH in order.
var sofficeNames = []string{"soffice", "libreoffice"}

// wellKnownSoffice lists default install locations per platform.
func wellKnownSoffice() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files\LibreOffice\program\soffice.exe`,
			`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
		}
	case "darwin":
		return []string{"/Applications/LibreOffice.app/Contents/MacOS/soffice"}
	default:
		return []string{
			"/usr/bin/soffice",
			"/usr/lib/libreoffice/program/soffice",
			"/opt/libreoffice/program/soffice",
			"/snap/bin/libreoffice",
		}
	}
}

// runFunc executes the converter and returns its combined output.
type runFunc func(ctx context.Context, bin string, args []string) ([]byte, error)

// LibreOffice converts through a headless soffice process. It works on
// every platform and needs no COM registration.
type LibreOffice struct {
	getenv     func(string) string
	lookPath   func(string) (string, error)
	candidates func() []string
	run        runFunc
}

// NewLibreOffice creates a backend that discovers soffice via
// MD2DOCX_SOFFICE_BIN, PATH, then well-known install paths.
func NewLibreOffice() *LibreOffice {
	return &LibreOffice{
		getenv:     os.Getenv,
		lookPath:   exec.LookPath,
		candidates: wellKnownSoffice,
		run:        runSoffice,
	}
}

// Compile-time interface checks.
var (
	_ Backend     = (*LibreOffice)(nil)
	_ Application = (*sofficeApp)(nil)
	_ Document    = (*sofficeDoc)(nil)
)

func (*LibreOffice) Name() string        { return NameLibreOffice }
func (*LibreOffice) DisplayName() string { return "LibreOffice" }

// Locate returns the soffice binary path.
func (l *LibreOffice) Locate() (string, error) {
	if bin := l.getenv(EnvSofficeBin); bin != "" {
		if !fileutil.FileExists(bin) {
			return "", fmt.Errorf("%w: %s=%s does not exist", ErrNotFound, EnvSofficeBin, bin)
		}
		return bin, nil
	}
	for _, name := range sofficeNames {
		if p, err := l.lookPath(name); err == nil {
			return p, nil
		}
	}
	for _, p := range l.candidates() {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: soffice not on PATH", ErrNotFound)
}

// Launch prepares a private work directory. The soffice process itself is
// started per SaveAs call, since --convert-to is a one-shot mode.
func (l *LibreOffice) Launch(ctx context.Context) (Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bin, err := l.Locate()
	if err != nil {
		return nil, err
	}
	work, err := os.MkdirTemp("", "md2docx-soffice-*")
	if err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}
	return &sofficeApp{bin: bin, work: work, run: l.run}, nil
}

type sofficeApp struct {
	bin  string
	work string
	run  runFunc
}

func (a *sofficeApp) Open(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("source %s: %w", path, os.ErrNotExist)
	}
	return &sofficeDoc{app: a, src: path}, nil
}

// Quit removes the work directory, including the throwaway profile.
func (a *sofficeApp) Quit() error {
	if a.work == "" {
		return nil
	}
	err := os.RemoveAll(a.work)
	a.work = ""
	return err
}

type sofficeDoc struct {
	app *sofficeApp
	src string
}

// SetMargins is satisfied by the @page rule of the generated markup,
// which the StarWriter HTML filter maps to page style margins. soffice
// offers no margin switch in --convert-to mode.
func (d *sofficeDoc) SetMargins(ctx context.Context, points float64) error {
	if points < 0 {
		return fmt.Errorf("negative margin %v", points)
	}
	return ctx.Err()
}

// SaveAs converts the source into the work directory and moves the result
// to path.
func (d *sofficeDoc) SaveAs(ctx context.Context, path string) error {
	outDir := filepath.Join(d.app.work, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	out, err := d.app.run(ctx, d.app.bin, sofficeArgs(d.src, outDir, filepath.Join(d.app.work, "profile")))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return fmt.Errorf("soffice: %w: %s", err, strings.TrimSpace(string(out)))
	}

	stem := strings.TrimSuffix(filepath.Base(d.src), filepath.Ext(d.src))
	produced := filepath.Join(outDir, stem+".docx")
	if !fileutil.FileExists(produced) {
		return fmt.Errorf("%w: %s", ErrNoOutput, strings.TrimSpace(string(out)))
	}
	if err := fileutil.MoveFile(produced, path); err != nil {
		return fmt.Errorf("moving output: %w", err)
	}
	return nil
}

func (d *sofficeDoc) Close() error { return nil }

// sofficeArgs builds the command line. A private profile lets the
// conversion run while the user has LibreOffice open.
func sofficeArgs(src, outDir, profile string) []string {
	return []string{
		"--headless",
		"--norestore",
		"--nologo",
		"--nolockcheck",
		"-env:UserInstallation=" + fileURL(profile),
		"--infilter=HTML (StarWriter)",
		"--convert-to", "docx:MS Word 2007 XML",
		"--outdir", outDir,
		src,
	}
}

// fileURL converts an absolute or relative path to a file:// URL.
func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

func runSoffice(ctx context.Context, bin string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	process.Configure(cmd)
	cmd.WaitDelay = sofficeWaitDelay

	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() != nil {
		return out, ctx.Err()
	}
	return out, err
}
