package launch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/diag"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/launch"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/platform"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/script"
)

func newBuilder(t *testing.T) *launch.Builder {
	t.Helper()
	return launch.NewBuilder(script.NewManagerAt(t.TempDir(), diag.Nop()), diag.Nop())
}

func TestBuildDarwinBareTerminal(t *testing.T) {
	cmd, err := newBuilder(t).Build(platform.MacOS, "Terminal", "/Users/a/vault", launch.Options{})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, `open -na "Terminal" "/Users/a/vault"`, cmd.Line)
	assert.False(t, cmd.HasCleanup())
}

func TestBuildBlankAppReturnsNil(t *testing.T) {
	b := newBuilder(t)
	families := []platform.Family{platform.MacOS, platform.Windows, platform.LinuxDesktop, platform.NonDesktop}
	for _, fam := range families {
		for _, app := range []string{"", "   ", "\t"} {
			for _, tool := range []string{"", "claude"} {
				cmd, err := b.Build(fam, app, "/vault", launch.Options{Tool: tool})
				require.NoError(t, err)
				assert.Nil(t, cmd, "family=%v app=%q tool=%q", fam, app, tool)
			}
		}
	}
}

func TestBuildNonDesktopReturnsNil(t *testing.T) {
	cmd, err := newBuilder(t).Build(platform.NonDesktop, "Terminal", "/vault", launch.Options{})
	require.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestBuildNoToolNeverCreatesCleanup(t *testing.T) {
	b := newBuilder(t)
	cases := []struct {
		fam platform.Family
		app string
	}{
		{platform.MacOS, "iTerm"},
		{platform.Windows, "cmd"},
		{platform.Windows, "alacritty"},
		{platform.LinuxDesktop, "kitty"},
	}
	for _, tc := range cases {
		cmd, err := b.Build(tc.fam, tc.app, "/vault", launch.Options{})
		require.NoError(t, err)
		require.NotNil(t, cmd)
		assert.False(t, cmd.HasCleanup(), "family=%v app=%q", tc.fam, tc.app)
	}
}

func TestBuildDarwinWithToolUsesScript(t *testing.T) {
	base := t.TempDir()
	b := launch.NewBuilder(script.NewManagerAt(base, diag.Nop()), diag.Nop())

	cmd, err := b.Build(platform.MacOS, "iTerm", "/vault", launch.Options{Tool: "claude"})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	require.True(t, cmd.HasCleanup())

	require.True(t, strings.HasPrefix(cmd.Line, `open -na "iTerm" "`), cmd.Line)
	require.True(t, strings.HasSuffix(cmd.Line, `"`), cmd.Line)

	path := strings.TrimSuffix(strings.TrimPrefix(cmd.Line, `open -na "iTerm" "`), `"`)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "#!/bin/bash\n"), content)
	assert.Contains(t, content, "cd \"/vault\"\n")
	assert.Contains(t, content, "claude\n")
	assert.True(t, strings.HasSuffix(content, "exec \"$SHELL\" -l\n"), content)

	// cleanup removes the whole script directory and tolerates repeats
	cmd.Cleanup()
	cmd.Cleanup()
	_, err = os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(err))
}

func TestBuildDarwinEscapesQuotes(t *testing.T) {
	cmd, err := newBuilder(t).Build(platform.MacOS, `We"ird`, `/tmp/a"b`, launch.Options{})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, `open -na "We\"ird" "/tmp/a\"b"`, cmd.Line)
}

func TestBuildWindowsTemplates(t *testing.T) {
	b := newBuilder(t)
	cases := []struct {
		name string
		app  string
		tool string
		want string
	}{
		{"cmd bare", "cmd", "", `start "" cmd.exe /K "cd /d "C:\vault""`},
		{"cmd.exe tool", "CMD.EXE", "claude", `start "" cmd.exe /K "cd /d "C:\vault" && claude"`},
		{"powershell bare", "powershell", "", `start "" powershell.exe -NoExit -Command "Set-Location -Path 'C:\vault'"`},
		{"powershell tool", "PowerShell.exe", "codex", `start "" powershell.exe -NoExit -Command "Set-Location -Path 'C:\vault'; codex"`},
		{"wt bare", "wt", "", `start "" wt.exe new-tab cmd.exe /K "cd /d "C:\vault""`},
		{"wt.exe tool", "WT.exe", "claude", `start "" wt.exe new-tab cmd.exe /K "cd /d "C:\vault" && claude"`},
		{"generic bare", "alacritty", "", `start "" "alacritty"`},
		{"generic tool falls back to cmd", "alacritty", "claude", `start "" cmd.exe /K "cd /d "C:\vault" && claude"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := b.Build(platform.Windows, tc.app, `C:\vault`, launch.Options{Tool: tc.tool})
			require.NoError(t, err)
			require.NotNil(t, cmd)
			assert.Equal(t, tc.want, cmd.Line)
			assert.False(t, cmd.HasCleanup())
		})
	}
}

func TestBuildWindowsPowerShellDoublesQuotes(t *testing.T) {
	cmd, err := newBuilder(t).Build(platform.Windows, "powershell", `C:\o'brien`, launch.Options{})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, `start "" powershell.exe -NoExit -Command "Set-Location -Path 'C:\o''brien'"`, cmd.Line)
}

func TestBuildWindowsWSL(t *testing.T) {
	b := newBuilder(t)

	cmd, err := b.Build(platform.Windows, "cmd", `C:\vault`, launch.Options{UseWSL: true})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, `start "" wsl.exe --cd "C:\vault"`, cmd.Line)

	cmd, err = b.Build(platform.Windows, "wt", `C:\vault`, launch.Options{Tool: "claude", UseWSL: true})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, `start "" wsl.exe --cd "C:\vault" -e bash -lc "claude; exec bash -l"`, cmd.Line)
}

func TestBuildLinuxWrappers(t *testing.T) {
	b := newBuilder(t)
	frag := `'cd "$PWD" && claude; exec "$SHELL" -l'`
	cases := []struct {
		name string
		app  string
		tool string
		want string
	}{
		{"bare app is the whole command", "kitty", "", "kitty"},
		{"gnome-terminal uses --", "gnome-terminal", "claude", "gnome-terminal -- bash -lc " + frag},
		{"gnome-terminal variant", "/usr/bin/gnome-terminal", "claude", "/usr/bin/gnome-terminal -- bash -lc " + frag},
		{"konsole uses -e", "konsole", "claude", "konsole -e bash -lc " + frag},
		{"generic uses -e", "xterm", "claude", "xterm -e bash -lc " + frag},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := b.Build(platform.LinuxDesktop, tc.app, "/vault", launch.Options{Tool: tc.tool})
			require.NoError(t, err)
			require.NotNil(t, cmd)
			assert.Equal(t, tc.want, cmd.Line)
			assert.False(t, cmd.HasCleanup())
		})
	}
}

func TestCommandCleanupNilSafe(t *testing.T) {
	cmd := &launch.Command{Line: "kitty"}
	assert.False(t, cmd.HasCleanup())
	cmd.Cleanup()
	cmd.ScheduleCleanup()
}
