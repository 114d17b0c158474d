package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/host"
)

// checkResult holds the --check-app report.
type checkResult struct {
	Status   string               `json:"status"` // "ready" or "missing"
	Selected string               `json:"selected,omitempty"`
	Prefer   string               `json:"prefer"`
	OS       string               `json:"os"`
	Arch     string               `json:"arch"`
	Hosts    []md2docx.HostStatus `json:"hosts"`
}

// runCheckCmd reports installed word processors and returns an exit code.
// Exit codes: 0 = a usable host exists, 4 = none.
func runCheckCmd(flags *cliFlags, env *Environment, prefer string) int {
	result := runCheck(backendsFor(env), prefer)

	if flags.host.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printCheckResult(env.Stdout, result)
	}

	if result.Status != "ready" {
		return ExitHost
	}
	return ExitSuccess
}

// runCheck locates every backend and the one a conversion would pick.
func runCheck(backends []md2docx.Backend, prefer string) *checkResult {
	if prefer == "" {
		prefer = host.NameAuto
	}
	result := &checkResult{
		Status: "missing",
		Prefer: prefer,
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		Hosts:  host.Report(backends),
	}
	if b, _, err := host.Probe(backends, prefer); err == nil {
		result.Status = "ready"
		result.Selected = b.Name()
	}
	return result
}

// printCheckResult outputs the human-readable report.
func printCheckResult(w io.Writer, r *checkResult) {
	fmt.Fprintln(w, "md2docx --check-app")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Platform: %s/%s\n", r.OS, r.Arch)
	fmt.Fprintf(w, "Preferred host: %s\n", r.Prefer)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Word processors")
	for _, h := range r.Hosts {
		if h.Available {
			marker := "  "
			if h.Name == r.Selected {
				marker = "* "
			}
			fmt.Fprintf(w, "  [OK] %s%s (%s)\n", marker, h.DisplayName, h.Location)
			continue
		}
		fmt.Fprintf(w, "  [--]   %s: not found\n", h.DisplayName)
	}
	fmt.Fprintln(w)

	if r.Status == "ready" {
		fmt.Fprintf(w, "Status: Ready (using %s)\n", r.Selected)
		return
	}
	fmt.Fprintln(w, "Status: Not ready (install Microsoft Word, WPS Office or LibreOffice)")
}
