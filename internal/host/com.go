package host

// ProgIDs probed in order. Versioned Word IDs cover installs where the
// unversioned registration is missing. WPS.Application is the current WPS
// Writer registration; KWps.Application only exists on older builds.
var (
	wordProgIDs = []string{
		"Word.Application",
		"Word.Application.16",
		"Word.Application.15",
		"Word.Application.14",
	}
	wpsProgIDs = []string{
		"WPS.Application",
		"KWps.Application",
	}
)

// releaseAction is what ending an automation session does to the
// application process.
type releaseAction int

const (
	// releaseDetach drops the COM reference and leaves the process alone.
	releaseDetach releaseAction = iota
	// releaseQuit asks the application to exit, killing it if Quit fails.
	releaseQuit
	// releaseKill kills the process by image name.
	releaseKill
)

// releasePlan decides how to end a session. An instance that was already
// running belongs to the user: it is never hidden, quit or killed, only
// the document opened by the conversion is closed.
func releasePlan(shared, hung bool) releaseAction {
	switch {
	case shared:
		return releaseDetach
	case hung:
		return releaseKill
	default:
		return releaseQuit
	}
}

// ownsWindow reports whether the application window may be hidden and
// its alert settings changed.
func ownsWindow(shared bool) bool {
	return !shared
}
