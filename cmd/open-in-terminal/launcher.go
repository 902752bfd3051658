package main

import (
	"github.com/google/uuid"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/diag"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/launch"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/platform"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/settings"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/spawn"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/targets"
)

// launcher wires synthesis and spawning for one working directory. It
// implements palette.Launcher.
type launcher struct {
	fam     platform.Family
	dir     string
	builder *launch.Builder
	log     *diag.Logger
}

// Launch builds and spawns the command for t using the given settings
// snapshot. Returns launch.ErrNotConfigured when synthesis decides the
// launch is impossible by configuration.
func (l *launcher) Launch(t targets.Target, s settings.Settings) error {
	cmd, err := l.builder.Build(l.fam, s.TerminalApp(l.fam), l.dir, launch.Options{
		Tool:   t.Tool,
		UseWSL: s.UseWSL,
	})
	if err != nil {
		return err
	}
	if cmd == nil {
		return launch.ErrNotConfigured
	}

	// correlation id ties the spawn and its delayed cleanup together in
	// the diagnostics stream
	id := uuid.NewString()
	l.log.Debugf("launch %s: target=%s command=%q dir=%s", id, t.ID, cmd.Line, l.dir)
	if err := spawn.Detached(cmd.Line, l.dir); err != nil {
		// the terminal never opened, no point keeping the script around
		cmd.Cleanup()
		return err
	}
	cmd.ScheduleCleanup()
	l.log.Debugf("launch %s: spawned, cleanup in %s", id, launch.CleanupDelay)
	return nil
}
