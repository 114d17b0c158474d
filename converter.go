package md2docx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2docx/internal/charset"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/host"
	"github.com/alnah/go-md2docx/internal/logger"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LinePreprocessor)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Input describes one conversion.
type Input struct {
	// Path is the Markdown source file. Required.
	Path string

	// OutputPath is the .docx target. Defaults to the source path with a
	// .docx extension.
	OutputPath string

	// Encoding of the source: "utf-8" (default), "gb18030", "gbk" or "auto".
	Encoding string

	// HTMLOnly writes the intermediate HTML and skips the host application.
	HTMLOnly bool
}

// Result reports the files a conversion produced.
type Result struct {
	HTMLPath string
	DocxPath string // empty when Input.HTMLOnly
	Host     string // backend name, empty when Input.HTMLOnly
	Elements int
	Duration time.Duration
}

// Converter turns Markdown files into styled HTML and hands the HTML to a
// word processor to save as .docx. It holds no open resources between calls.
type Converter struct {
	cfg          converterConfig
	log          *logger.Logger
	preprocessor pipeline.MarkdownPreprocessor
	cssInjector  pipeline.CSSInjector
}

// NewConverter creates a Converter with the built-in styles and the
// platform's backends. Options override both.
// Returns ErrInvalidStyle or ErrMissingStyle for a bad style set and
// ErrUnknownHost for an unknown host name.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: DefaultTimeout,
			styles:  DefaultStyles(),
		},
		log:          logger.Discard(),
		preprocessor: &pipeline.LinePreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.styles.Validate(); err != nil {
		return nil, err
	}
	if err := host.ValidateName(c.cfg.host); err != nil {
		return nil, err
	}
	if c.cfg.backends == nil {
		c.cfg.backends = host.DefaultBackends()
	}
	return c, nil
}

// Styles returns a copy of the styles the converter renders with.
func (c *Converter) Styles() StyleSet {
	return c.cfg.styles.Clone()
}

// Hosts reports the availability of the converter's backends.
func (c *Converter) Hosts() []HostStatus {
	return host.Report(c.cfg.backends)
}

// SelectHost returns the backend a conversion would use.
func (c *Converter) SelectHost() (Backend, error) {
	b, skipped, err := host.Probe(c.cfg.backends, c.cfg.host)
	if err != nil {
		return nil, err
	}
	c.log.HostSelected(b.Name(), skipped)
	return b, nil
}

// RenderHTML converts Markdown text into a complete HTML document.
// It performs no I/O and returns the element count alongside the markup.
func (c *Converter) RenderHTML(ctx context.Context, markdown string) (string, int, error) {
	text := c.preprocessor.PreprocessMarkdown(ctx, markdown)
	if ctx.Err() != nil {
		return "", 0, ctx.Err()
	}

	elements := Parse(text)
	doc, err := Render(c.cfg.styles, elements, c.cfg.render)
	if err != nil {
		return "", 0, err
	}

	doc = c.cssInjector.InjectCSS(ctx, doc, c.cfg.css)
	if ctx.Err() != nil {
		return "", 0, ctx.Err()
	}
	return doc, len(elements), nil
}

// Convert writes <stem>.html next to the source, then has the host
// application save it as .docx. The HTML file is kept.
// The host handoff is bounded by the converter timeout and ctx; the host
// application is closed on every path.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrConversionFailed, r)
		}
	}()

	start := time.Now()

	encoding, err := c.validateInput(input)
	if err != nil {
		return nil, err
	}

	// Probe before writing anything so a missing host leaves no files.
	var backend Backend
	if !input.HTMLOnly {
		backend, err = c.SelectHost()
		if err != nil {
			return nil, err
		}
	}

	raw, err := os.ReadFile(input.Path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	markdown, err := charset.Decode(raw, encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	doc, count, err := c.RenderHTML(ctx, markdown)
	if err != nil {
		return nil, err
	}
	c.log.InputParsed(input.Path, encoding, count)

	htmlPath, err := fileutil.SiblingPath(input.Path, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	if err := fileutil.WriteFile(htmlPath, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	c.log.HTMLWritten(htmlPath, len(doc))

	res := &Result{HTMLPath: htmlPath, Elements: count}
	if input.HTMLOnly {
		res.Duration = time.Since(start)
		return res, nil
	}

	docxPath, err := c.outputPath(input)
	if err != nil {
		return nil, err
	}
	htmlAbs, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	if err := c.handOff(ctx, backend, htmlAbs, docxPath); err != nil {
		c.log.HandoffFailed(backend.Name(), err)
		return nil, err
	}
	if info, statErr := os.Stat(docxPath); statErr != nil || info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrOutputMissing, docxPath)
	}

	res.DocxPath = docxPath
	res.Host = backend.Name()
	res.Duration = time.Since(start)
	c.log.HandoffFinished(res.Host, docxPath, res.Duration)
	return res, nil
}

// handOff performs the open, page setup and save sequence. Every step
// error is wrapped in its sentinel; the document and the application are
// released in reverse order of acquisition.
func (c *Converter) handOff(ctx context.Context, b Backend, src, dst string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	c.log.HandoffStarted(b.Name(), src, dst, c.cfg.timeout)

	app, err := b.Launch(ctx)
	if err != nil {
		return hostError(ctx, ErrHostLaunch, err)
	}
	defer func() {
		if qerr := app.Quit(); qerr != nil {
			c.log.CleanupFailed("quit", qerr)
		}
	}()

	doc, err := app.Open(ctx, src)
	if err != nil {
		return hostError(ctx, ErrHostOpen, err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			c.log.CleanupFailed("close", cerr)
		}
	}()

	if err := doc.SetMargins(ctx, PageMarginPoints); err != nil {
		return hostError(ctx, ErrHostPageSetup, err)
	}
	if err := doc.SaveAs(ctx, dst); err != nil {
		return hostError(ctx, ErrHostSave, err)
	}
	return nil
}

// hostError wraps a handoff failure. Context errors stay matchable with
// errors.Is so callers can tell a timeout from a host fault.
func hostError(ctx context.Context, sentinel, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %w (%v)", sentinel, ctxErr, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

// outputPath resolves the absolute .docx target.
func (c *Converter) outputPath(input Input) (string, error) {
	out := input.OutputPath
	if out == "" {
		var err error
		out, err = fileutil.SiblingPath(input.Path, "docx")
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
		}
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	return abs, nil
}

// validateInput checks the source exists before anything is written and
// returns the canonical encoding name.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their flags validated earlier, at parse time.
func (c *Converter) validateInput(input Input) (string, error) {
	if input.Path == "" {
		return "", ErrNoInput
	}
	if !fileutil.FileExists(input.Path) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, input.Path)
	}
	encoding, err := charset.Normalize(input.Encoding)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return encoding, nil
}
