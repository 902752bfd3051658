package launch

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/diag"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/platform"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/script"
)

// Package launch synthesizes the platform-correct command line that opens a
// terminal window in a working directory, optionally running a tool inside
// it. One algorithm exists per platform family; dispatch happens once, on
// the family value, instead of scattering OS checks through the builders.

// CleanupDelay is how long a temporary launch script outlives the spawn.
// The opened terminal only needs the file long enough to read it once.
const CleanupDelay = 30 * time.Second

// ErrNotConfigured marks a launch skipped for configuration reasons. The
// caller should point the user at settings rather than report a failure.
var ErrNotConfigured = errors.New("no terminal application configured")

// Command is a ready-to-spawn launch invocation. Line carries every quote
// and escape it needs; the spawner runs it verbatim through the platform
// shell with the working directory as cwd.
type Command struct {
	Line string

	cleanup func()
	once    sync.Once
}

// HasCleanup reports whether the command owns temporary resources.
func (c *Command) HasCleanup() bool {
	return c.cleanup != nil
}

// Cleanup releases any temporary resources behind the command. Safe to call
// on commands without a cleanup obligation, and safe to call repeatedly.
func (c *Command) Cleanup() {
	if c.cleanup == nil {
		return
	}
	c.once.Do(c.cleanup)
}

// ScheduleCleanup arranges Cleanup to fire after CleanupDelay. The timer is
// fire-and-forget: tearing the process down first leaves at most one small
// directory for the OS temp cleaner.
func (c *Command) ScheduleCleanup() {
	if c.cleanup == nil {
		return
	}
	time.AfterFunc(CleanupDelay, c.Cleanup)
}

// Options adjust how the command is synthesized.
type Options struct {
	// Tool is the external program to run inside the terminal, e.g.
	// "claude". Empty opens an idle interactive shell.
	Tool string
	// UseWSL routes Windows launches through the WSL subsystem instead of
	// native shells. Ignored on other platforms.
	UseWSL bool
}

// Builder synthesizes launch commands. It owns no state beyond its
// collaborators, so a single Builder serves concurrent launches.
type Builder struct {
	scripts *script.Manager
	log     *diag.Logger
}

func NewBuilder(scripts *script.Manager, log *diag.Logger) *Builder {
	return &Builder{scripts: scripts, log: log}
}

// Build returns the launch command for terminalApp at dir, or (nil, nil)
// when launching is impossible by configuration: a non-desktop host or a
// blank terminal application name. That outcome is not an error; errors are
// reserved for temp-script I/O.
func (b *Builder) Build(fam platform.Family, terminalApp, dir string, opts Options) (*Command, error) {
	app := strings.TrimSpace(terminalApp)
	if app == "" {
		b.log.Debugf("no terminal application configured, not launching")
		return nil, nil
	}
	switch fam {
	case platform.MacOS:
		return b.buildDarwin(app, dir, opts.Tool)
	case platform.Windows:
		return buildWindows(app, dir, opts.Tool, opts.UseWSL), nil
	case platform.LinuxDesktop:
		return buildUnix(app, opts.Tool), nil
	default:
		b.log.Debugf("family %s cannot host a terminal window, not launching", fam)
		return nil, nil
	}
}
