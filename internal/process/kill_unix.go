//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Configure starts cmd in its own process group so KillProcessGroup can
// take down helper processes the office suite spawns. cmd must come from
// exec.CommandContext: Start rejects a Cancel func without a context.
func Configure(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort cleanup; exec.Cmd.Wait reports the real outcome.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}

// KillImage is a no-op outside Windows: COM hosts only exist there.
func KillImage(string) {}
