// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// goos is replaced in tests.
var goos = runtime.GOOS

// ForHostNotFound returns hints for a missing word processor. Windows users
// are pointed at Word or WPS first; everyone else at LibreOffice.
func ForHostNotFound() string {
	var hints []string

	if goos == "windows" {
		hints = append(hints, "install Microsoft Word or WPS Office, or LibreOffice")
	} else {
		switch {
		case IsInContainer():
			hints = append(hints, "install libreoffice-writer in the image")
		case goos == "darwin":
			hints = append(hints, "install LibreOffice (brew install --cask libreoffice)")
		default:
			hints = append(hints, "install LibreOffice Writer from your package manager")
		}
	}

	if os.Getenv("MD2DOCX_SOFFICE_BIN") == "" {
		hints = append(hints, "set MD2DOCX_SOFFICE_BIN to a custom soffice binary")
	}

	hints = append(hints, "use --html-only to keep just the HTML file")
	return formatHints(hints)
}

// ForUnknownHost lists the accepted --host values.
func ForUnknownHost(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return format("accepted: " + strings.Join(names, ", "))
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("a host may wait on a dialog; close it or raise --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2docx/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns a hint for a missing source file.
func ForInputNotFound() string {
	return format("check the path; the input must be an existing text file such as notice.md")
}

// ForEncoding returns a hint for undecodable input.
func ForEncoding(names []string) string {
	return format("try --encoding auto or one of: " + strings.Join(names, ", "))
}

// ForStyle points at the accepted style bounds.
func ForStyle() string {
	return format("sizes and line spacing must be > 0; spacing and indent must be >= 0; align is left, center, right or justify")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
