package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ActivationOffset != 100 {
		t.Errorf("expected default activation_offset 100, got %d", cfg.ActivationOffset)
	}
	if cfg.RowHeight != 20 {
		t.Errorf("expected default row_height 20, got %d", cfg.RowHeight)
	}
	if cfg.ScrollDuration != 120*time.Millisecond {
		t.Errorf("expected default scroll_duration 120ms, got %s", cfg.ScrollDuration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8090" {
		t.Errorf("addr: got %q, want %q", cfg.Addr, ":8090")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".helpdock.yml")
	data := "activation_offset: 40\nrow_height: 10\nscroll_duration: 250ms\ncontent_dir: ./help\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ActivationOffset != 40 {
		t.Errorf("activation_offset: got %d, want 40", cfg.ActivationOffset)
	}
	if cfg.RowHeight != 10 {
		t.Errorf("row_height: got %d, want 10", cfg.RowHeight)
	}
	if cfg.ScrollDuration != 250*time.Millisecond {
		t.Errorf("scroll_duration: got %s, want 250ms", cfg.ScrollDuration)
	}
	if cfg.ContentDir != "./help" {
		t.Errorf("content_dir: got %q", cfg.ContentDir)
	}
	// Untouched keys keep their defaults.
	if cfg.ScrollFrames != 6 {
		t.Errorf("scroll_frames: got %d, want default 6", cfg.ScrollFrames)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".helpdock.yml")
	if err := os.WriteFile(path, []byte("addr: \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HELPDOCK_ADDR", ":9100")
	t.Setenv("HELPDOCK_NARROW_WIDTH", "60")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9100" {
		t.Errorf("addr: got %q, want env override %q", cfg.Addr, ":9100")
	}
	if cfg.NarrowWidth != 60 {
		t.Errorf("narrow_width: got %d, want 60", cfg.NarrowWidth)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")
	original := DefaultConfig()
	original.ActivationOffset = 60
	original.BaseURL = "https://example.test"
	original.LogLevel = "debug"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ActivationOffset != 60 {
		t.Errorf("activation_offset: got %d, want 60", loaded.ActivationOffset)
	}
	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.ScrollDuration != original.ScrollDuration {
		t.Errorf("scroll_duration: got %s, want %s", loaded.ScrollDuration, original.ScrollDuration)
	}
}

func TestSave_WritesReadableDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")
	cfg := DefaultConfig()
	cfg.ScrollDuration = 1500 * time.Millisecond
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "scroll_duration: 1.5s\n") {
		t.Errorf("scroll_duration not written as a duration string:\n%s", data)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ScrollDuration != cfg.ScrollDuration {
		t.Errorf("scroll_duration: got %s, want %s", loaded.ScrollDuration, cfg.ScrollDuration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative offset", func(c *Config) { c.ActivationOffset = -1 }, "activation_offset"},
		{"zero row height", func(c *Config) { c.RowHeight = 0 }, "row_height"},
		{"zero frames", func(c *Config) { c.ScrollFrames = 0 }, "scroll_frames"},
		{"negative duration", func(c *Config) { c.ScrollDuration = -time.Second }, "scroll_duration"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"zero offset ok", func(c *Config) { c.ActivationOffset = 0 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "WARN"
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
	cfg.LogLevel = "bogus"
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v, want info fallback", cfg.Level())
	}
}
