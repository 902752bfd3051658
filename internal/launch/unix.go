package launch

import "strings"

// buildUnix covers Linux and BSD desktops. The spawner starts the emulator
// with the working directory as its cwd, so with no tool the command is
// just the application name. With a tool, a bash fragment re-enters that
// cwd, runs the tool and then re-execs the login shell so the window
// survives the tool exiting.
func buildUnix(app, tool string) *Command {
	if tool == "" {
		return &Command{Line: app}
	}
	frag := `cd "$PWD" && ` + tool + `; exec "$SHELL" -l`
	wrapper := "bash -lc " + quoteSingle(frag)
	if strings.Contains(app, "gnome-terminal") {
		// gnome-terminal dropped -e; everything after -- is the command
		return &Command{Line: app + " -- " + wrapper}
	}
	// konsole and most other emulators accept -e
	return &Command{Line: app + " -e " + wrapper}
}
