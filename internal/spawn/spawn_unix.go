//go:build !windows

package spawn

import (
	"os/exec"
	"syscall"
)

// shellCommand hands the line to /bin/sh in its own session, with no
// inherited stdio, so closing the launcher does not touch the terminal.
func shellCommand(line string) *exec.Cmd {
	cmd := exec.Command("/bin/sh", "-c", line)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd
}
