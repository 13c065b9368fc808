package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"helpdock/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yml")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPagesCommand(t *testing.T) {
	out, err := run(t, "pages")
	if err != nil {
		t.Fatalf("pages: %v", err)
	}
	for _, want := range []string{"SLUG", "calendar", "Services", "settings"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportThenCheck(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 10 files") {
		t.Errorf("export output = %q", out)
	}

	out, err = run(t, "check", dir, "--strict")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Content OK: 8 pages, 95 articles") || !strings.Contains(out, "0 broken") {
		t.Errorf("check output = %q", out)
	}
}

func TestCheckStrictFailsOnBrokenLink(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(`<a href="/main/gone">x</a>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if out, err := run(t, "check", dir, "--strict=false"); err != nil {
		t.Fatalf("non-strict check should pass: %v\n%s", err, out)
	}
	out, err := run(t, "check", dir, "--strict")
	if err == nil {
		t.Fatal("strict check should fail")
	}
	if !strings.Contains(out, "broken: index.html -> /main/gone") {
		t.Errorf("output = %q", out)
	}
}

func TestInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helpdock.yml")
	rootCmd.SetArgs([]string{"init", "--config", path})
	rootCmd.SetOut(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RowHeight != 20 || cfg.ActivationOffset != 100 {
		t.Errorf("cfg = %+v", cfg)
	}

	rootCmd.SetArgs([]string{"init", "--config", path, "--force=false"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("init should refuse to overwrite")
	}
}

func TestBrowseUnknownPage(t *testing.T) {
	if _, err := run(t, "browse", "staff"); err == nil || !strings.Contains(err.Error(), "helpdock pages") {
		t.Fatalf("err = %v", err)
	}
}
