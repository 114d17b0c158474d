//go:build !windows

package host

// comBackends is empty off Windows: Word and WPS automation needs COM.
func comBackends() []Backend {
	return nil
}
