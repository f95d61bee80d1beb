package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NoOpen || cfg.NoTUI {
		t.Fatalf("toggles should default to false: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.ReportName != "file_credit_report" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILECREDIT_NO_OPEN", "1")
	t.Setenv("FILECREDIT_NO_TUI", "true")
	t.Setenv("FILECREDIT_LOG_LEVEL", "debug")
	t.Setenv("FILECREDIT_REPORT_NAME", "credits")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.NoOpen || !cfg.NoTUI {
		t.Fatalf("expected toggles from env: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.ReportName != "credits" {
		t.Fatalf("unexpected env values: %+v", cfg)
	}
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	yaml := "no_open: true\nreport_name: from_file\nlog_level: warn\n"
	if err := os.WriteFile(filepath.Join(dir, "filecredit.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FILECREDIT_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.NoOpen || cfg.ReportName != "from_file" {
		t.Fatalf("expected file values: %+v", cfg)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("env should override file, got %q", cfg.LogLevel)
	}
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.WriteFile(filepath.Join(dir, "filecredit.yaml"), []byte("no_open: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadToggleValues(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"yes":   true,
		"on":    true,
		"y":     true,
		"Y":     true,
		"0":     false,
		"false": false,
		"no":    false,
		"off":   false,
		"":      false,
	}

	for value, want := range cases {
		t.Run("value="+value, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("HOME", t.TempDir())
			t.Setenv("FILECREDIT_NO_OPEN", value)
			t.Setenv("FILECREDIT_NO_TUI", value)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.NoOpen != want || cfg.NoTUI != want {
				t.Fatalf("FILECREDIT_NO_OPEN=%q gave NoOpen=%v NoTUI=%v, want %v", value, cfg.NoOpen, cfg.NoTUI, want)
			}
		})
	}
}
