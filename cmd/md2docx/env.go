package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/alnah/go-md2docx"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, terminal detection, environment lookup, and host backends.
type Environment struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool
	Getenv     func(string) string
	Environ    func() []string
	Backends   []md2docx.Backend  // nil = platform defaults
	Open       func(string) error // opens a file with the desktop handler
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: stdinIsTerminal,
		Getenv:     os.Getenv,
		Environ:    os.Environ,
		Open:       openDocument,
	}
}

// stdinIsTerminal reports whether questions can be answered interactively.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// getenv tolerates a nil Getenv in partially built test environments.
func (e *Environment) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return strings.TrimSpace(e.Getenv(key))
}
