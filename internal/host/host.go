// Package host drives the office application that turns the generated
// HTML into a .docx file.
//
// The capability is deliberately narrow: launch an application, open one
// document, set its page margins, save it in Word format, close it and
// quit. Each supported suite is a Backend; Probe picks the first one
// installed on the machine.
package host

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Backend names, as accepted by --host and the config file.
const (
	NameAuto        = "auto"
	NameWord        = "word"
	NameWPS         = "wps"
	NameLibreOffice = "libreoffice"
)

// Sentinel errors for host lookup and conversion.
var (
	ErrNotFound     = errors.New("no supported word processor found (install Microsoft Word, WPS Office or LibreOffice)")
	ErrUnknownHost  = errors.New("unknown host application")
	ErrNoOutput     = errors.New("converter produced no output file")
	ErrUnresponsive = errors.New("host application stopped responding")
)

// Backend is one installable office suite.
type Backend interface {
	// Name is the short identifier: "word", "wps" or "libreoffice".
	Name() string

	// DisplayName is shown to users, e.g. "Microsoft Word".
	DisplayName() string

	// Locate reports where the suite was found (a COM ProgID or a binary
	// path). It returns an error wrapping ErrNotFound when not installed.
	Locate() (string, error)

	// Launch starts or attaches to the application.
	Launch(ctx context.Context) (Application, error)
}

// Application is a running office suite instance.
type Application interface {
	Open(ctx context.Context, path string) (Document, error)

	// Quit releases the application. Instances started by Launch are
	// terminated, forcibly if they do not respond.
	Quit() error
}

// Document is a document opened by an Application.
type Document interface {
	// SetMargins sets all four page margins, in points.
	SetMargins(ctx context.Context, points float64) error

	// SaveAs writes the document to path in Word 2007+ format.
	SaveAs(ctx context.Context, path string) error

	// Close discards any unsaved changes.
	Close() error
}

// Status describes one backend for reporting.
type Status struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Available   bool   `json:"available"`
	Location    string `json:"location,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Names lists the accepted --host values.
func Names() []string {
	return []string{NameAuto, NameWord, NameWPS, NameLibreOffice}
}

// ValidateName checks that name is empty or one of Names.
func ValidateName(name string) error {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return nil
	}
	for _, known := range Names() {
		if n == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (accepted: %s)", ErrUnknownHost, name, strings.Join(Names(), ", "))
}

// Probe returns the backend to use. With prefer empty or "auto" it is the
// first installed backend in order; otherwise the named backend, which
// must be installed. skipped lists the backends tried before the result.
func Probe(backends []Backend, prefer string) (b Backend, skipped []string, err error) {
	if err := ValidateName(prefer); err != nil {
		return nil, nil, err
	}
	prefer = strings.ToLower(strings.TrimSpace(prefer))

	for _, candidate := range backends {
		if prefer != "" && prefer != NameAuto && candidate.Name() != prefer {
			continue
		}
		if _, err := candidate.Locate(); err != nil {
			skipped = append(skipped, candidate.Name())
			continue
		}
		return candidate, skipped, nil
	}

	if prefer != "" && prefer != NameAuto {
		return nil, skipped, fmt.Errorf("%w: %s is not installed", ErrNotFound, prefer)
	}
	return nil, skipped, ErrNotFound
}

// Report locates every backend without launching any of them.
func Report(backends []Backend) []Status {
	out := make([]Status, 0, len(backends))
	for _, b := range backends {
		st := Status{Name: b.Name(), DisplayName: b.DisplayName()}
		loc, err := b.Locate()
		if err != nil {
			st.Error = err.Error()
		} else {
			st.Available = true
			st.Location = loc
		}
		out = append(out, st)
	}
	return out
}

// DefaultBackends returns the backends available on this platform, in
// probing order: Word, WPS, then LibreOffice.
func DefaultBackends() []Backend {
	backends := comBackends()
	return append(backends, NewLibreOffice())
}
