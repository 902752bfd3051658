package spawn

import "github.com/pkg/errors"

// Package spawn executes a synthesized launch command through the platform
// shell, detached from this process. The launcher never waits on the opened
// terminal and never reads its output; only the start error surfaces.

// Detached runs line via the platform shell with dir as working directory
// and releases the child so it cannot keep this process alive.
func Detached(line, dir string) error {
	cmd := shellCommand(line)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "spawn terminal")
	}
	return errors.Wrap(cmd.Process.Release(), "release spawned terminal")
}
