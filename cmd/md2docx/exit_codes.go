package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/charset"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
	"github.com/alnah/go-md2docx/internal/host"
)

// Exit codes for md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or styles
	ExitIO      = 3 // Input missing, unreadable, or undecodable
	ExitHost    = 4 // Word processor missing or failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Host errors (exit 4)
	if errors.Is(err, md2docx.ErrHostNotFound) ||
		errors.Is(err, md2docx.ErrHostLaunch) ||
		errors.Is(err, md2docx.ErrHostOpen) ||
		errors.Is(err, md2docx.ErrHostPageSetup) ||
		errors.Is(err, md2docx.ErrHostSave) ||
		errors.Is(err, md2docx.ErrOutputMissing) {
		return ExitHost
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2docx.ErrInputNotFound) ||
		errors.Is(err, md2docx.ErrReadInput) ||
		errors.Is(err, md2docx.ErrWriteHTML) ||
		errors.Is(err, md2docx.ErrInvalidEncoding) ||
		errors.Is(err, ErrReadCSS) {
		return ExitIO
	}

	// Usage/config/style errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, md2docx.ErrNoInput) ||
		errors.Is(err, md2docx.ErrUnknownHost) ||
		errors.Is(err, md2docx.ErrInvalidStyle) ||
		errors.Is(err, md2docx.ErrMissingStyle) ||
		errors.Is(err, charset.ErrUnknownEncoding) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns the hint appended to an error message, or "".
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, md2docx.ErrHostNotFound):
		return hints.ForHostNotFound()
	case errors.Is(err, md2docx.ErrUnknownHost):
		return hints.ForUnknownHost(host.Names())
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if !fileutil.IsFilePath(configName) {
			searched = config.SearchPaths(configName)
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, md2docx.ErrInputNotFound):
		return hints.ForInputNotFound()
	case errors.Is(err, md2docx.ErrInvalidEncoding), errors.Is(err, charset.ErrUnknownEncoding):
		return hints.ForEncoding(charset.Names)
	case errors.Is(err, md2docx.ErrInvalidStyle):
		return hints.ForStyle()
	}
	return ""
}
