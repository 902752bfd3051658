package palette

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/diag"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/launch"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/settings"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/targets"
)

// Package palette is the command-palette host: a small bubbletea list over
// the registered launch targets. Selecting an entry launches it; failures
// show up as a footer notice, never as a crash.

// Launcher performs the actual launch for a selected target against a
// settings snapshot.
type Launcher interface {
	Launch(t targets.Target, s settings.Settings) error
}

type item struct {
	t targets.Target
}

func (i item) Title() string { return i.t.Name }

func (i item) Description() string {
	if i.t.Tool == "" {
		return "interactive shell"
	}
	return "runs " + i.t.Tool
}

func (i item) FilterValue() string { return i.t.Name }

// Model is the palette state.
type Model struct {
	list     list.Model
	cfg      settings.Settings
	registry *targets.Registry
	launcher Launcher
	updates  <-chan settings.Settings
	log      *diag.Logger

	notice      string
	noticeStyle lipgloss.Style
}

// New builds the palette over the registry's current entries. updates may
// be nil when no settings watcher is available.
func New(cfg settings.Settings, reg *targets.Registry, l Launcher, updates <-chan settings.Settings, log *diag.Logger) *Model {
	lst := list.New(itemsFor(reg.Commands()), list.NewDefaultDelegate(), 48, 16)
	lst.Title = "Open in terminal"
	lst.SetShowStatusBar(false)
	lst.SetShowHelp(true)

	return &Model{
		list:        lst,
		cfg:         cfg,
		registry:    reg,
		launcher:    l,
		updates:     updates,
		log:         log,
		noticeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func itemsFor(ts []targets.Target) []list.Item {
	items := make([]list.Item, 0, len(ts))
	for _, t := range ts {
		items = append(items, item{t: t})
	}
	return items
}

// Notice returns the current footer notice, empty when none is shown.
func (m *Model) Notice() string {
	return m.notice
}

func (m *Model) Init() tea.Cmd {
	return m.waitForSettings()
}

// waitForSettings blocks on the watcher channel and feeds reloads back into
// Update as messages.
func (m *Model) waitForSettings() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return settingsReloadedMsg{s: s}
	}
}

func (m *Model) launchCmd(t targets.Target) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		return launchDoneMsg{target: t, err: m.launcher.Launch(t, cfg)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.notice = ""
				return m, m.launchCmd(it.t)
			}
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-1)

	case launchDoneMsg:
		return m.handleLaunchDone(msg)

	case settingsReloadedMsg:
		m.cfg = msg.s
		m.registry.Refresh(&m.cfg)
		m.log.SetVerbose(m.cfg.Verbose)
		m.log.Debugf("palette refreshed: %d targets registered", len(m.registry.Commands()))
		return m, tea.Batch(
			m.list.SetItems(itemsFor(m.registry.Commands())),
			m.waitForSettings(),
		)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleLaunchDone turns launch outcomes into notices. A successful launch
// closes the palette; the terminal window is the result the user wanted.
func (m *Model) handleLaunchDone(msg launchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		return m, tea.Quit
	}
	if errors.Is(msg.err, launch.ErrNotConfigured) {
		m.notice = "No terminal application is configured for this platform. Edit the launcher settings file."
		return m, nil
	}
	m.log.Errorf("launch %s failed: %v", msg.target.ID, msg.err)
	m.notice = fmt.Sprintf("Could not launch %s: %v", msg.target.Name, msg.err)
	return m, nil
}

func (m *Model) View() string {
	view := m.list.View()
	if m.notice != "" {
		view += "\n" + m.noticeStyle.Render(m.notice)
	}
	return view
}

// Run starts the palette program and blocks until it exits.
func Run(cfg settings.Settings, reg *targets.Registry, l Launcher, updates <-chan settings.Settings, log *diag.Logger) error {
	p := tea.NewProgram(New(cfg, reg, l, updates, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
