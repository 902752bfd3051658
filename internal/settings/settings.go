package settings

import (
	"strings"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/platform"
)

// Package settings holds the launcher configuration: one terminal-app slot
// per platform family, one flag per optional tool target, plus the verbose
// and WSL toggles. Persisted blobs from older versions or hand-edited files
// can be arbitrarily shaped, so loading always goes through Normalize.

// slotKeys are the terminal-app slots in the persisted map, one per family
// that can host a terminal window.
var slotKeys = []string{"macos", "windows", "linux"}

// defaultApps is the out-of-the-box terminal per family, so a fresh install
// launches without any configuration.
var defaultApps = map[string]string{
	"macos":   "Terminal",
	"windows": "cmd",
	"linux":   "gnome-terminal",
}

// Settings is the normalized runtime configuration.
type Settings struct {
	// TerminalApps maps a family slot key to the user's terminal choice.
	// Only the slot of the running platform is ever read or written; a
	// value configured on one OS means nothing on another.
	TerminalApps map[string]string `yaml:"terminalApp"`

	EnableClaude   bool `yaml:"enableClaude"`
	EnableCodex    bool `yaml:"enableCodex"`
	EnableCursor   bool `yaml:"enableCursor"`
	EnableGemini   bool `yaml:"enableGemini"`
	EnableOpenCode bool `yaml:"enableOpenCode"`

	Verbose bool `yaml:"verboseLogging"`
	// UseWSL routes Windows launches through the Linux subsystem. Stored on
	// every platform, honored only on Windows.
	UseWSL bool `yaml:"useWSL"`
}

// Defaults returns the configuration used when nothing is persisted.
func Defaults() Settings {
	apps := make(map[string]string, len(defaultApps))
	for k, v := range defaultApps {
		apps[k] = v
	}
	return Settings{TerminalApps: apps}
}

// Normalize converts an arbitrary decoded settings blob into a well-formed
// Settings value. It is total: non-mapping blobs yield defaults, and each
// field falls back independently when absent or of the wrong type. fam
// names the running platform so a legacy bare-string terminalApp can be
// pinned to the right slot; values it may have carried for other platforms
// are unknowable and discarded.
func Normalize(raw any, fam platform.Family) Settings {
	s := Defaults()
	m, ok := toStringMap(raw)
	if !ok {
		return s
	}

	switch app := m["terminalApp"].(type) {
	case string:
		// legacy shape: a single string written by whatever platform the
		// user ran at the time; only trust it for the current one
		if key := fam.Key(); key != "" {
			s.TerminalApps[key] = strings.TrimSpace(app)
		}
	default:
		if apps, ok := toStringMap(app); ok {
			for _, key := range slotKeys {
				if v, ok := apps[key].(string); ok {
					s.TerminalApps[key] = strings.TrimSpace(v)
				}
			}
		}
	}

	s.EnableClaude = boolField(m, "enableClaude", s.EnableClaude)
	s.EnableCodex = boolField(m, "enableCodex", s.EnableCodex)
	s.EnableCursor = boolField(m, "enableCursor", s.EnableCursor)
	s.EnableGemini = boolField(m, "enableGemini", s.EnableGemini)
	s.EnableOpenCode = boolField(m, "enableOpenCode", s.EnableOpenCode)
	s.Verbose = boolField(m, "verboseLogging", s.Verbose)
	s.UseWSL = boolField(m, "useWSL", s.UseWSL)
	return s
}

// TerminalApp returns the configured terminal application for fam, or empty
// when the family has no slot.
func (s *Settings) TerminalApp(fam platform.Family) string {
	key := fam.Key()
	if key == "" {
		return ""
	}
	return s.TerminalApps[key]
}

// SetTerminalApp writes only fam's slot; choices made on other platforms
// pass through untouched.
func (s *Settings) SetTerminalApp(fam platform.Family, app string) {
	key := fam.Key()
	if key == "" {
		return
	}
	if s.TerminalApps == nil {
		s.TerminalApps = make(map[string]string)
	}
	s.TerminalApps[key] = strings.TrimSpace(app)
}

func boolField(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

// toStringMap accepts the two mapping shapes a yaml decode can produce.
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}
