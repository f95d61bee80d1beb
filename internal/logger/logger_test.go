package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGetBeforeInit(t *testing.T) {
	Logger = nil
	l := Get()
	if l == nil {
		t.Fatal("expected a logger")
	}
	l.Warn().Msg("discarded")
}

func TestInitLevels(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}

	for level, want := range cases {
		if err := Init(level, ""); err != nil {
			t.Fatalf("Init(%q) error = %v", level, err)
		}
		if got := Get().GetLevel(); got != want {
			t.Errorf("Init(%q) level = %v, want %v", level, got, want)
		}
	}
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := Init("info", path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Get().Warn().Str("path", "broken.pdf").Msg("skipped")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "broken.pdf") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestInitBadFile(t *testing.T) {
	if err := Init("info", filepath.Join(t.TempDir(), "missing", "run.log")); err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
