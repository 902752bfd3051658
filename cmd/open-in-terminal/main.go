package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/diag"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/launch"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/palette"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/platform"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/script"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/settings"
	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/targets"
)

func main() {
	var (
		dir     = flag.String("dir", ".", "working directory to open the terminal in")
		target  = flag.String("target", "", "launch a target id directly instead of showing the palette")
		verbose = flag.Bool("verbose", false, "enable diagnostic logging regardless of settings")
	)
	flag.Parse()

	fam := platform.Detect()
	log := diag.New(*verbose)

	store, err := settings.NewStore(fam, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to locate settings: %v\n", err)
		os.Exit(1)
	}
	cfg, err := store.Load()
	if err != nil {
		// unreadable file, not just missing: run on defaults but say so
		fmt.Fprintf(os.Stderr, "Warning: %v; using default settings\n", err)
	}
	if cfg.Verbose {
		log.SetVerbose(true)
	}

	wd, err := filepath.Abs(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad working directory %q: %v\n", *dir, err)
		os.Exit(1)
	}
	if info, err := os.Stat(wd); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Working directory %q does not exist\n", wd)
		os.Exit(1)
	}

	if fam == platform.NonDesktop {
		fmt.Fprintln(os.Stderr, "No desktop session detected; cannot open a terminal window here.")
		os.Exit(1)
	}

	l := &launcher{
		fam:     fam,
		dir:     wd,
		builder: launch.NewBuilder(script.NewManager(log), log),
		log:     log,
	}

	registry := targets.NewRegistry()
	registry.Refresh(&cfg)

	if *target != "" {
		runDirect(registry, l, cfg, *target, store.Path())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates, err := store.Watch(ctx)
	if err != nil {
		log.Warnf("settings watcher unavailable: %v", err)
		updates = nil
	}

	if err := palette.Run(cfg, registry, l, updates, log); err != nil {
		fmt.Fprintf(os.Stderr, "Palette error: %v\n", err)
		os.Exit(1)
	}
}

// runDirect launches one target without the palette, for scripted use and
// editor keybindings. The process exits before any cleanup timer fires, so
// a macOS launch script is left for the OS temp cleaner.
func runDirect(registry *targets.Registry, l *launcher, cfg settings.Settings, id, settingsPath string) {
	t, ok := registry.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown or disabled target %q. Registered targets:\n", id)
		for _, rt := range registry.Commands() {
			fmt.Fprintf(os.Stderr, "  %s\t%s\n", rt.ID, rt.Name)
		}
		os.Exit(1)
	}
	if err := l.Launch(t, cfg); err != nil {
		if errors.Is(err, launch.ErrNotConfigured) {
			fmt.Fprintf(os.Stderr, "No terminal application configured for this platform. Edit %s\n", settingsPath)
		} else {
			fmt.Fprintf(os.Stderr, "Could not launch %s: %v\n", t.Name, err)
		}
		os.Exit(1)
	}
}
