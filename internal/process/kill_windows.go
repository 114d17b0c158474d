//go:build windows

package process

import (
	"os/exec"
	"strconv"
	"syscall"
)

// createNoWindow keeps taskkill and soffice from flashing a console.
const createNoWindow = 0x08000000

// Configure hides the console window of cmd and makes context
// cancellation kill its whole process tree. cmd must come from
// exec.CommandContext: Start rejects a Cancel func without a context.
func Configure(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: createNoWindow}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}

// KillProcessGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort cleanup; exec.Cmd.Wait reports the real outcome.
	_ = taskkill("/PID", strconv.Itoa(pid))
}

// KillImage force-closes every process running the named executable,
// e.g. "WINWORD.EXE". Used when an automation server stops responding.
func KillImage(image string) {
	if image == "" {
		return
	}
	_ = taskkill("/IM", image)
}

func taskkill(args ...string) error {
	cmd := exec.Command("taskkill", append([]string{"/F", "/T"}, args...)...)
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: createNoWindow}
	return cmd.Run()
}
