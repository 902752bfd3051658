package targets

import "github.com/Feng6611/Obsidian-open-in-Teminal/internal/settings"

// Package targets defines the launch targets offered in the palette: a bare
// terminal plus one entry per supported CLI coding tool, each behind its
// own settings flag.

// Target is one palette entry.
type Target struct {
	// ID is stable across settings changes; the palette registry keys
	// registration on it.
	ID string
	// Name is the display name shown in the palette.
	Name string
	// Tool is the program invoked inside the terminal. Empty opens an idle
	// interactive shell.
	Tool string

	gate func(*settings.Settings) bool // nil means always registered
}

// Gated reports whether the target sits behind a settings flag.
func (t Target) Gated() bool {
	return t.gate != nil
}

// All returns the static target list in palette order. The bare terminal
// target comes first and carries no gate.
func All() []Target {
	return []Target{
		{ID: "open-terminal", Name: "Open terminal", Tool: ""},
		{ID: "open-claude", Name: "Open terminal with Claude Code", Tool: "claude",
			gate: func(s *settings.Settings) bool { return s.EnableClaude }},
		{ID: "open-codex", Name: "Open terminal with Codex CLI", Tool: "codex",
			gate: func(s *settings.Settings) bool { return s.EnableCodex }},
		// Cursor's CLI entry point is cursor-agent; plain cursor opens the editor.
		{ID: "open-cursor", Name: "Open terminal with Cursor CLI", Tool: "cursor-agent",
			gate: func(s *settings.Settings) bool { return s.EnableCursor }},
		{ID: "open-gemini", Name: "Open terminal with Gemini CLI", Tool: "gemini",
			gate: func(s *settings.Settings) bool { return s.EnableGemini }},
		{ID: "open-opencode", Name: "Open terminal with OpenCode", Tool: "opencode",
			gate: func(s *settings.Settings) bool { return s.EnableOpenCode }},
	}
}

// Enabled reports whether t should currently be offered. The gate-less
// terminal target is enabled under every configuration.
func Enabled(s *settings.Settings, t Target) bool {
	if t.gate == nil {
		return true
	}
	return t.gate(s)
}
