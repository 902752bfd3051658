package script

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/diag"
)

// Package script manages the short-lived launcher scripts used on macOS,
// where handing a command line to the terminal app directly would trigger
// automation permission prompts.

// scriptName is the fixed file name inside each temporary directory.
const scriptName = "launch.sh"

// Manager creates launcher scripts under the system temp directory.
type Manager struct {
	log  *diag.Logger
	base string // overrides os.TempDir when set (tests)
}

// NewManager returns a Manager writing under the default temp directory.
func NewManager(log *diag.Logger) *Manager {
	return &Manager{log: log}
}

// NewManagerAt writes scripts under base instead of the system temp
// directory, so tests can observe and reclaim them.
func NewManagerAt(base string, log *diag.Logger) *Manager {
	return &Manager{log: log, base: base}
}

// Script is a written launcher script. Cleanup removes the directory
// holding it; it is idempotent and never panics.
type Script struct {
	Path string

	dir  string
	log  *diag.Logger
	once sync.Once
}

// Create writes content to a fresh executable script in its own uniquely
// named directory and returns the script together with its cleanup.
func (m *Manager) Create(content string) (*Script, error) {
	dir, err := os.MkdirTemp(m.base, "open-in-terminal-")
	if err != nil {
		return nil, errors.Wrap(err, "create script directory")
	}
	path := filepath.Join(dir, scriptName)
	if err := os.WriteFile(path, []byte(content), 0o700); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrap(err, "write launch script")
	}
	m.log.Debugf("launch script written to %s", path)
	return &Script{Path: path, dir: dir, log: m.log}, nil
}

// Cleanup removes the script's directory. The directory being gone already
// is fine; failures are logged as warnings and swallowed since the launch
// they supported has long completed.
func (s *Script) Cleanup() {
	s.once.Do(func() {
		if err := os.RemoveAll(s.dir); err != nil {
			s.log.Warnf("could not remove launch script directory %s: %v", s.dir, err)
			return
		}
		s.log.Debugf("removed launch script directory %s", s.dir)
	})
}
