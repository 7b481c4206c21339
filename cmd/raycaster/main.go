// Package main is the entry point for the interactive raycaster.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/config"
	"github.com/Faultbox/flatcaster/internal/engine/audio"
	"github.com/Faultbox/flatcaster/internal/engine/ebitenhost"
	"github.com/Faultbox/flatcaster/internal/engine/glhost"
	"github.com/Faultbox/flatcaster/internal/engine/terminal"
	"github.com/Faultbox/flatcaster/internal/game"
	"github.com/Faultbox/flatcaster/internal/logger"
)

var (
	flagPickConfig = flag.Bool("pick-config", false, "Choose the config file with a native file dialog")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

func main() {
	config.ParseFlags()

	path := config.ConfigPath()
	if *flagPickConfig {
		picked, err := pickConfig()
		switch {
		case errors.Is(err, dialog.ErrCancelled):
		case err != nil:
			fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
			os.Exit(1)
		default:
			path = picked
		}
	}

	cfg, err := config.LoadPath(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal backend owns stdout, so console logging would corrupt
	// the screen.
	opts := logger.Options{Level: cfg.Logging.Level, Console: os.Stdout}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if cfg.Graphics.Backend == config.BackendTerminal {
		opts.Console = nil
	}
	if err := logger.InitWithOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if *flagSaveConfig {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		logger.Sync()
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("raycaster failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== flatcaster ===", zap.String("backend", cfg.Graphics.Backend))
	logger.Sugar.Debugf("config: %+v", cfg)

	session, err := game.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	if cfg.Audio.Enabled {
		cues := audio.New(cfg.Audio.Volume)
		if err := cues.Init(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer cues.Close()
			session.SetCues(cues)
		}
	}

	if cfg.Graphics.Backend == config.BackendEbiten {
		return ebitenhost.Run(cfg, session)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var backend game.Backend
	switch cfg.Graphics.Backend {
	case config.BackendTerminal:
		backend, err = terminal.New(cfg)
	default:
		backend, err = glhost.New(cfg)
	}
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Graphics.Backend, err)
	}
	defer backend.Close()

	return game.Run(ctx, session, backend, cfg.Graphics.FPSLimit)
}

// pickConfig asks for a YAML file, starting in the config directory.
func pickConfig() (string, error) {
	return dialog.File().
		Filter("YAML config", "yaml", "yml").
		Filter("All Files", "*").
		SetStartDir(config.ConfigDir()).
		Title("Open flatcaster config").
		Load()
}
