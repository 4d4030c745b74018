package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"weekgrid/internal/config"
	"weekgrid/internal/grid"
	applog "weekgrid/internal/log"
	"weekgrid/internal/schedule"
	"weekgrid/internal/tui"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath   string
	schedulePath string
	debug        bool
}

func main() {
	flags := parseFlags()
	if flags.debug {
		applog.SetLevel(applog.LevelDebug)
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		applog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	// CLI --schedule overrides the config file path if provided.
	if flags.schedulePath != "" {
		conf.SchedulePath = flags.schedulePath
	}

	applog.Info("weekgrid starting",
		"config_path", flags.configPath,
		"schedule_path", conf.SchedulePath,
		"days", len(conf.Days),
		"hours", conf.EndHour-conf.StartHour,
	)

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		applog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	store := schedule.NewStore()
	files := schedule.NewFiles(afero.NewOsFs())
	ctrl := grid.New(grid.Options{
		Days:          conf.Days,
		Bounds:        conf.Bounds(),
		Palette:       conf.Palette,
		ToastDuration: time.Duration(conf.ToastDurationMs) * time.Millisecond,
		SchedulePath:  conf.SchedulePath,
	}, store, files)

	// Start from the saved schedule when one exists.
	if _, err := os.Stat(conf.SchedulePath); err == nil {
		if events, err := files.Load(conf.SchedulePath); err == nil {
			store.ReplaceAll(events)
		}
	}

	prog := tea.NewProgram(tui.New(ctrl, conf.Palette),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		applog.Error("tui exited", err)
		os.Exit(1)
	}

	applog.Info("weekgrid exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", defaultConfigPath(), "Path to config file")
	flag.StringVar(&cfg.schedulePath, "schedule", "", "Schedule file path (overrides config if set)")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return cfg
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "weekgrid.yaml"
	}
	return dir + "/weekgrid/config.yaml"
}
