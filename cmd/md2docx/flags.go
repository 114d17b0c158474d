package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx/internal/charset"
	"github.com/alnah/go-md2docx/internal/host"
)

// ErrUsage marks errors caused by the command line itself.
var ErrUsage = errors.New("usage error")

// commonFlags holds flags controlling output verbosity and config.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// hostFlags holds host application selection flags.
type hostFlags struct {
	name     string
	timeout  string
	checkApp bool
	json     bool
}

// renderFlags holds HTML generation flags.
type renderFlags struct {
	css           string
	mergeLists    bool
	keepNumbering bool
	htmlOnly      bool
}

// cliFlags holds every md2docx flag.
type cliFlags struct {
	common   commonFlags
	host     hostFlags
	render   renderFlags
	output   string
	encoding string
	noPrompt bool
	open     bool
	version  bool
	help     bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion steps")
}

// addHostFlags adds host flags to a FlagSet.
func addHostFlags(fs *flag.FlagSet, f *hostFlags) {
	fs.StringVar(&f.name, "host", "", "word processor: auto, word, wps, libreoffice")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "host conversion timeout (e.g. 90s, 2m)")
	fs.BoolVar(&f.checkApp, "check-app", false, "report installed word processors and exit")
	fs.BoolVar(&f.json, "json", false, "print --check-app report as JSON")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after generated styles")
	fs.BoolVar(&f.mergeLists, "merge-lists", false, "merge consecutive list items into one list")
	fs.BoolVar(&f.keepNumbering, "keep-numbering", false, "keep source numbers of ordered items")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the HTML file only, skip the word processor")
}

// newFlagSet registers every flag on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&f.output, "output", "o", "", "output .docx file or directory")
	fs.StringVar(&f.encoding, "encoding", "", "input encoding: utf-8, gb18030, gbk, auto")
	fs.BoolVar(&f.noPrompt, "no-prompt", false, "never ask questions")
	fs.BoolVar(&f.open, "open", false, "open the document after conversion")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	addCommonFlags(fs, &f.common)
	addHostFlags(fs, &f.host)
	addRenderFlags(fs, &f.render)
	return fs
}

// parseFlags parses md2docx flags and returns positional args.
// args excludes the program name.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			f.help = true
			return f, fs.Args(), nil
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if err := f.validate(); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// validate checks flag values that pflag cannot type-check.
func (f *cliFlags) validate() error {
	if f.host.name != "" {
		if err := host.ValidateName(f.host.name); err != nil {
			return fmt.Errorf("--host: %w", err)
		}
	}
	if f.encoding != "" {
		if _, err := charset.Normalize(f.encoding); err != nil {
			return fmt.Errorf("--encoding: %w", err)
		}
	}
	if f.host.timeout != "" {
		if _, err := parseTimeout(f.host.timeout); err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
	}
	if f.host.json && !f.host.checkApp {
		return fmt.Errorf("%w: --json requires --check-app", ErrUsage)
	}
	if f.render.htmlOnly && f.open {
		return fmt.Errorf("%w: --open cannot be combined with --html-only", ErrUsage)
	}
	return nil
}

// parseTimeout parses a positive Go duration.
func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid duration %q", ErrUsage, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive, got %s", ErrUsage, d)
	}
	return d, nil
}
