// Package config loads helpdock settings from defaults, an optional YAML
// file and HELPDOCK_* environment variables, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto config keys: HELPDOCK_ROW_HEIGHT -> row_height.
const EnvPrefix = "HELPDOCK_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path. Durations are
// written in their string form ("120ms") so the file stays hand-editable.
func (c *Config) Save(path string) error {
	var doc yamlv3.Node
	if err := doc.Encode(c); err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "scroll_duration" {
			doc.Content[i+1].SetString(c.ScrollDuration.String())
		}
	}
	data, err := yamlv3.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.ActivationOffset < 0 {
		return fmt.Errorf("activation_offset must be non-negative")
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive")
	}
	if c.NarrowWidth < 0 {
		return fmt.Errorf("narrow_width must be non-negative")
	}
	if c.ScrollFrames <= 0 {
		return fmt.Errorf("scroll_frames must be positive")
	}
	if c.ScrollDuration < 0 {
		return fmt.Errorf("scroll_duration must be non-negative")
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Level returns the slog level for LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	if l, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return l
	}
	return slog.LevelInfo
}
