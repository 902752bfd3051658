//go:build windows

package spawn

import (
	"os/exec"
	"syscall"
)

// shellCommand hands the line to cmd.exe in a new process group. The
// synthesized commands all begin with `start`, so the intermediate cmd
// returns as soon as the terminal window is up; HideWindow keeps that
// intermediate from flashing a console.
func shellCommand(line string) *exec.Cmd {
	cmd := exec.Command("cmd.exe", "/C", line)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
	return cmd
}
