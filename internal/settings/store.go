package settings

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/diag"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/platform"
)

const (
	configDirName  = ".open-in-terminal"
	configFileName = "config.yaml"
)

// Store persists the settings blob as yaml. Lookup prefers a config file in
// the working directory over the per-user one, so a directory can carry its
// own launcher configuration.
type Store struct {
	path string
	fam  platform.Family
	log  *diag.Logger
}

// NewStore resolves the settings file location for the running platform.
func NewStore(fam platform.Family, log *diag.Logger) (*Store, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return NewStoreAt(configFileName, fam, log), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve home directory")
	}
	return NewStoreAt(filepath.Join(home, configDirName, configFileName), fam, log), nil
}

// NewStoreAt builds a store over an explicit file path.
func NewStoreAt(path string, fam platform.Family, log *diag.Logger) *Store {
	return &Store{path: path, fam: fam, log: log}
}

// Path returns the backing file location.
func (st *Store) Path() string {
	return st.path
}

// Load reads and normalizes the persisted settings. A missing or malformed
// file is not an error: the launcher runs on defaults and says so in the
// diagnostics channel.
func (st *Store) Load() (Settings, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			st.log.Debugf("no settings file at %s, using defaults", st.path)
			return Defaults(), nil
		}
		return Defaults(), errors.Wrapf(err, "read settings %s", st.path)
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		st.log.Warnf("settings file %s is malformed, using defaults: %v", st.path, err)
		return Defaults(), nil
	}
	return Normalize(raw, st.fam), nil
}

// Save rewrites the settings file, creating its directory if needed.
func (st *Store) Save(s Settings) error {
	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create settings directory")
		}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}
	return errors.Wrapf(os.WriteFile(st.path, data, 0o644), "write settings %s", st.path)
}
