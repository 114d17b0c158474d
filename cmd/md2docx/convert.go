package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/host"
	"github.com/alnah/go-md2docx/internal/logger"
	"github.com/alnah/go-md2docx/internal/prompt"
)

// Sentinel errors for CLI operations.
var (
	ErrReadCSS   = errors.New("failed to read CSS file")
	ErrOutputDir = errors.New("failed to create output directory")
)

// dirPermissions is rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// settings is the merged result of flags, environment and config file.
type settings struct {
	host      string
	timeout   time.Duration
	encoding  string
	render    md2docx.RenderOptions
	cssPath   string
	outputDir string
	open      bool
}

// resolveSettings merges sources into settings.
// Precedence: CLI flags > environment > config file > defaults.
func resolveSettings(flags *cliFlags, cfg *config.Config, env *envConfig) settings {
	s := settings{
		host:      cfg.Host.Prefer,
		timeout:   cfg.Timeout(),
		encoding:  cfg.Input.Encoding,
		cssPath:   cfg.Render.CSS,
		outputDir: cfg.Output.DefaultDir,
		open:      cfg.Output.Open || flags.open,
		render: md2docx.RenderOptions{
			MergeLists:    cfg.Render.MergeLists || flags.render.mergeLists,
			KeepNumbering: cfg.Render.KeepNumbering || flags.render.keepNumbering,
		},
	}

	if env.Host != "" {
		s.host = env.Host
	}
	if env.Timeout > 0 {
		s.timeout = env.Timeout
	}

	if flags.host.name != "" {
		s.host = flags.host.name
	}
	if d, err := parseTimeout(flags.host.timeout); err == nil {
		s.timeout = d
	}
	if flags.encoding != "" {
		s.encoding = flags.encoding
	}
	if flags.render.css != "" {
		s.cssPath = flags.render.css
	}
	if s.timeout <= 0 {
		s.timeout = md2docx.DefaultTimeout
	}
	return s
}

// loadConfig returns the named config, or the defaults when name is empty.
func loadConfig(name string, log *logger.Logger) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log.ConfigLoaded(name)
	return cfg, nil
}

// readCSS loads the extra stylesheet, if any.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// hasMarkdownExtension reports whether path ends in .md or .markdown.
// Any text file is accepted; the extension only drives a warning.
func hasMarkdownExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// resolveOutputPath decides the .docx target. An empty result lets the
// converter write next to the input.
func resolveOutputPath(inputPath, flagOutput, defaultDir string) (string, error) {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".docx"

	if flagOutput != "" {
		if info, err := os.Stat(flagOutput); err == nil && info.IsDir() {
			return filepath.Join(flagOutput, name), nil
		}
		if strings.HasSuffix(flagOutput, "/") || strings.HasSuffix(flagOutput, string(filepath.Separator)) {
			return filepath.Join(flagOutput, name), nil
		}
		if !strings.EqualFold(filepath.Ext(flagOutput), ".docx") {
			return "", fmt.Errorf("%w: output %q must end in .docx or name a directory", ErrUsage, flagOutput)
		}
		return flagOutput, nil
	}

	if defaultDir != "" {
		return filepath.Join(defaultDir, name), nil
	}
	return "", nil
}

// backendsFor returns the injected backends or the platform defaults.
func backendsFor(env *Environment) []md2docx.Backend {
	if env.Backends != nil {
		return env.Backends
	}
	return md2docx.DefaultBackends()
}

// runConvert orchestrates one conversion, with questions on a terminal.
func runConvert(ctx context.Context, args []string, flags *cliFlags, env *Environment, log *logger.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: md2docx [flags] <input.md>", md2docx.ErrNoInput)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one input file, got %d", ErrUsage, len(args))
	}
	inputPath := args[0]
	if !hasMarkdownExtension(inputPath) {
		log.Warn("input has no Markdown extension, converting anyway", "path", inputPath)
	}

	cfg, err := loadConfig(flags.common.config, log)
	if err != nil {
		return err
	}
	s := resolveSettings(flags, cfg, loadEnvConfig(env, log))

	styles, err := cfg.ApplyStyles(md2docx.DefaultStyles())
	if err != nil {
		return err
	}
	css, err := readCSS(s.cssPath)
	if err != nil {
		return err
	}

	outputPath, err := resolveOutputPath(inputPath, flags.output, s.outputDir)
	if err != nil {
		return err
	}

	backends := backendsFor(env)
	interactive := !flags.noPrompt && env.IsTerminal != nil && env.IsTerminal()
	var p *prompt.Prompter
	if interactive {
		p = prompt.New(env.Stdin, env.Stdout)
		detected, _, probeErr := host.Probe(backends, s.host)
		if probeErr != nil && !flags.render.htmlOnly {
			return probeErr
		}
		printBanner(env, detected)

		title := "默认样式预览"
		if cfg.HasStyles() {
			title = "当前样式预览"
		}
		fmt.Fprintln(env.Stdout, prompt.Preview(title, styles))

		keep, askErr := p.AskYesNo("\n使用以上样式?", true)
		if askErr != nil {
			return askErr
		}
		if !keep {
			if styles, err = p.BuildStyles(styles); err != nil {
				return err
			}
		}
		fmt.Fprintln(env.Stdout)
	}

	if outputPath != "" && !flags.render.htmlOnly {
		if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputDir, err)
		}
	}

	conv, err := md2docx.NewConverter(
		md2docx.WithStyles(styles),
		md2docx.WithRenderOptions(s.render),
		md2docx.WithCSS(css),
		md2docx.WithHost(s.host),
		md2docx.WithTimeout(s.timeout),
		md2docx.WithBackends(backends...),
		md2docx.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	result, err := conv.Convert(ctx, md2docx.Input{
		Path:       inputPath,
		OutputPath: outputPath,
		Encoding:   s.encoding,
		HTMLOnly:   flags.render.htmlOnly,
	})
	if err != nil {
		return err
	}

	printResult(env, result, flags.common.quiet, flags.common.verbose)

	if result.DocxPath == "" {
		return nil
	}
	open := s.open
	if !open && interactive {
		if open, err = p.AskYesNo("是否打开生成的文档?", false); err != nil {
			return err
		}
	}
	if open && env.Open != nil {
		if err := env.Open(result.DocxPath); err != nil {
			log.Warn("could not open document", "path", result.DocxPath, "err", err)
		}
	}
	return nil
}

// printBanner shows the version and the host that will be used.
func printBanner(env *Environment, b md2docx.Backend) {
	fmt.Fprintln(env.Stdout, prompt.TitleStyle.Render("md2docx "+Version))
	if b == nil {
		fmt.Fprintln(env.Stdout, prompt.DimStyle.Render("宿主程序: 未检测到 (仅生成 HTML)"))
		return
	}
	fmt.Fprintln(env.Stdout, prompt.DimStyle.Render("宿主程序: "+b.DisplayName()))
}

// printResult reports the produced files.
func printResult(env *Environment, r *md2docx.Result, quiet, verbose bool) {
	if quiet {
		return
	}
	if verbose {
		fmt.Fprintf(env.Stdout, "HTML: %s\n", r.HTMLPath)
		if r.DocxPath != "" {
			fmt.Fprintf(env.Stdout, "Word: %s (%s, %d elements, %v)\n",
				r.DocxPath, r.Host, r.Elements, r.Duration.Round(time.Millisecond))
		}
		return
	}
	if r.DocxPath == "" {
		fmt.Fprintf(env.Stdout, "Created %s\n", r.HTMLPath)
		return
	}
	fmt.Fprintln(env.Stdout, prompt.SuccessStyle.Render("Created "+r.DocxPath))
}
