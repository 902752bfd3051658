package launch

import "strings"

// buildWindows dispatches on the configured application name. All commands
// go through `start` so the spawning shell returns immediately, and the
// known shells get their native "run and stay open" flag. Arbitrary
// terminal executables have no uniform equivalent, so a tool command on an
// unrecognized app falls back to a cmd.exe session.
func buildWindows(app, dir, tool string, useWSL bool) *Command {
	if useWSL {
		return buildWSL(dir, tool)
	}

	// cd /d also switches drives when the working dir is off C:.
	payload := "cd /d " + quoteWindowsPath(dir)
	if tool != "" {
		payload += " && " + tool
	}

	switch strings.ToLower(app) {
	case "cmd", "cmd.exe":
		return &Command{Line: `start "" cmd.exe /K "` + payload + `"`}
	case "powershell", "powershell.exe":
		loc := "Set-Location -Path " + quotePowerShellSingle(dir)
		if tool != "" {
			loc += "; " + tool
		}
		return &Command{Line: `start "" powershell.exe -NoExit -Command "` + loc + `"`}
	case "wt", "wt.exe":
		return &Command{Line: `start "" wt.exe new-tab cmd.exe /K "` + payload + `"`}
	default:
		if tool == "" {
			// best-effort generic launch of whatever the user configured
			return &Command{Line: `start "" ` + quoteWindowsPath(app)}
		}
		return &Command{Line: `start "" cmd.exe /K "` + payload + `"`}
	}
}

// buildWSL routes the launch through the Linux subsystem. Mirrors the Linux
// wrapper semantics: run the tool, then hand the window to a login shell so
// it stays open.
func buildWSL(dir, tool string) *Command {
	base := `start "" wsl.exe --cd ` + quoteWindowsPath(dir)
	if tool == "" {
		return &Command{Line: base}
	}
	return &Command{Line: base + ` -e bash -lc ` + quoteDouble(tool+"; exec bash -l")}
}
