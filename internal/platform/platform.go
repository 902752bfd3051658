package platform

import (
	"os"
	"runtime"
)

// Package platform classifies the running host into the closed set of OS
// families the launcher distinguishes. Exactly one synthesis algorithm and
// one settings slot exist per family.

// Family is one of the supported OS categories.
type Family int

const (
	// MacOS covers darwin hosts.
	MacOS Family = iota
	// Windows covers windows hosts.
	Windows
	// LinuxDesktop covers Linux and the BSDs with a graphical session.
	LinuxDesktop
	// NonDesktop covers everything a terminal window cannot be opened on:
	// headless Linux, servers, unrecognized systems.
	NonDesktop
)

func (f Family) String() string {
	switch f {
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	case LinuxDesktop:
		return "linux"
	default:
		return "non-desktop"
	}
}

// Key returns the settings slot name for the family, or empty for
// NonDesktop, which has no terminal-app preference.
func (f Family) Key() string {
	switch f {
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	case LinuxDesktop:
		return "linux"
	default:
		return ""
	}
}

// Detect classifies the current host. It is a pure query over GOOS and the
// session environment; callers may invoke it as often as they like.
func Detect() Family {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		// Without a display server there is no terminal emulator to open.
		if os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" {
			return LinuxDesktop
		}
		return NonDesktop
	default:
		return NonDesktop
	}
}
