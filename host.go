package md2docx

import "github.com/alnah/go-md2docx/internal/host"

// Host capability types. Implement Backend to plug in another word
// processor.
type (
	Backend     = host.Backend
	Application = host.Application
	Document    = host.Document
	HostStatus  = host.Status
)

// Host backend names.
const (
	HostAuto        = host.NameAuto
	HostWord        = host.NameWord
	HostWPS         = host.NameWPS
	HostLibreOffice = host.NameLibreOffice
)

// DefaultBackends returns the backends supported on this platform in
// probing order.
func DefaultBackends() []Backend {
	return host.DefaultBackends()
}

// DetectHosts reports which of the platform backends are installed.
func DetectHosts() []HostStatus {
	return host.Report(host.DefaultBackends())
}
