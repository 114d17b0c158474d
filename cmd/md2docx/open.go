package main

import (
	"os/exec"
	"runtime"
)

// openCommand returns the desktop command that opens path on goos.
func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// openDocument starts the default application for path without waiting.
func openDocument(path string) error {
	name, args := openCommand(runtime.GOOS, path)
	cmd := exec.Command(name, args...) // #nosec G204 -- fixed opener, path is our own output
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
