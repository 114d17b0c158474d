package md2docx

import (
	"errors"

	"github.com/alnah/go-md2docx/internal/host"
)

// Sentinel errors for library operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrInputNotFound    = errors.New("input file not found")
	ErrReadInput        = errors.New("failed to read input file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrUnknownElement   = errors.New("unknown element kind")
	ErrMissingStyle     = errors.New("style missing for element kind")
	ErrInvalidStyle     = errors.New("invalid style value")
	ErrInvalidEncoding  = errors.New("invalid input encoding")
	ErrHostLaunch       = errors.New("failed to start host application")
	ErrHostOpen         = errors.New("host application could not open document")
	ErrHostPageSetup    = errors.New("host application could not set page margins")
	ErrHostSave         = errors.New("host application could not save document")
	ErrOutputMissing    = errors.New("host application reported success but no output was written")
	ErrConversionFailed = errors.New("conversion failed")
)

// Host lookup errors, re-exported from the backend registry.
var (
	ErrHostNotFound = host.ErrNotFound
	ErrUnknownHost  = host.ErrUnknownHost
)
