package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"helpdock/internal/config"
	"helpdock/internal/content"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `helpdock init` to create a config file", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadLibrary reads content_dir when set and the embedded help center
// otherwise.
func loadLibrary(cfg *config.Config) (*content.Library, error) {
	var (
		lib *content.Library
		err error
	)
	if cfg.ContentDir != "" {
		lib, err = content.LoadDir(cfg.ContentDir)
	} else {
		lib, err = content.Default()
	}
	if err != nil {
		return nil, err
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content:\n%w", err)
	}
	return lib, nil
}

// newLogger returns a JSON logger writing to log_file, or to fallback when
// no file is configured. The returned closer must be called on exit.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	w, closer := fallback, func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f.Close
	}
	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
	return log, closer, nil
}
