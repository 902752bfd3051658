package palette

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/settings"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/targets"
)

// launchDoneMsg reports the outcome of a launch attempt back to the model.
type launchDoneMsg struct {
	target targets.Target
	err    error
}

// settingsReloadedMsg carries a freshly normalized settings value from the
// file watcher.
type settingsReloadedMsg struct {
	s settings.Settings
}

var (
	_ tea.Msg = launchDoneMsg{}
	_ tea.Msg = settingsReloadedMsg{}
)
