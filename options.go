package md2docx

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2docx/internal/logger"
)

// DefaultTimeout bounds the host application handoff when no timeout is set.
const DefaultTimeout = 2 * time.Minute

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout  time.Duration
	styles   StyleSet
	render   RenderOptions
	css      string
	host     string
	backends []Backend
}

// WithTimeout sets the host handoff timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2docx: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyles replaces the built-in styles. The set is copied, then
// validated by NewConverter.
func WithStyles(styles StyleSet) Option {
	return func(c *Converter) {
		c.cfg.styles = styles.Clone()
	}
}

// WithRenderOptions sets list merging and numbering behavior.
func WithRenderOptions(opts RenderOptions) Option {
	return func(c *Converter) {
		c.cfg.render = opts
	}
}

// WithCSS appends css after the generated style rules, so it can override them.
func WithCSS(css string) Option {
	return func(c *Converter) {
		c.cfg.css = css
	}
}

// WithHost restricts probing to one backend: "word", "wps", "libreoffice",
// or "auto" for the default order.
func WithHost(name string) Option {
	return func(c *Converter) {
		c.cfg.host = name
	}
}

// WithBackends replaces the platform backends, mainly for testing.
func WithBackends(backends ...Backend) Option {
	return func(c *Converter) {
		c.cfg.backends = backends
	}
}

// WithLogger routes conversion events to l. Events are discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = &logger.Logger{Logger: l}
		}
	}
}
