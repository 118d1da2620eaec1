package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THREADFEED_BASE_URL", "https://example.test/api/")
	t.Setenv("THREADFEED_CONFIG_DIR", dir)
	t.Setenv("THREADFEED_RATE", "2.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.BaseURL != "https://example.test/api" {
		t.Fatalf("base URL must be normalized: %q", cfg.BaseURL)
	}
	if cfg.StatePath != filepath.Join(dir, "state.yaml") || cfg.LogPath != filepath.Join(dir, "threadfeed.log") {
		t.Fatalf("unexpected default paths: %#v", cfg)
	}
	if cfg.RateLimit != 2.5 || cfg.LogLevel != "debug" || cfg.TokenPath != "" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoad_RejectsInsecureUnlessAllowed(t *testing.T) {
	t.Setenv("THREADFEED_CONFIG_DIR", t.TempDir())
	t.Setenv("THREADFEED_BASE_URL", "http://localhost:3000")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for http base URL")
	}

	t.Setenv("THREADFEED_ALLOW_INSECURE", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("allowed insecure load failed: %v", err)
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Fatalf("unexpected base URL: %q", cfg.BaseURL)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("THREADFEED_CONFIG_DIR", t.TempDir())
	for name, vars := range map[string][2]string{
		"relative url": {"THREADFEED_BASE_URL", "jsonplaceholder"},
		"ftp url":      {"THREADFEED_BASE_URL", "ftp://example.test"},
		"rate":         {"THREADFEED_RATE", "fast"},
		"negative":     {"THREADFEED_RATE", "-1"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(vars[0], vars[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", vars[0], vars[1])
			}
		})
	}
}

func TestUIState_LoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "state.yaml")

	st, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if st != (UIState{}) {
		t.Fatalf("expected empty state for missing file")
	}

	want := UIState{SelectedUserID: 7}
	if err := SaveUIState(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded state got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("selectedUserId: [oops"), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	if _, err := LoadUIState(path); err == nil {
		t.Fatalf("expected parse error for invalid yaml")
	}
	if err := SaveUIState("", want); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "threadfeed.log")
	logger, closer, err := NewLogger(Config{LogPath: path, LogLevel: "loud"})
	if err != nil {
		t.Fatalf("new logger failed: %v", err)
	}
	logger.Info("hello", "k", "v")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "unknown log level") || !strings.Contains(out, "msg=hello") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	if lvl, ok := ParseLogLevel("warn"); !ok || lvl != slog.LevelWarn {
		t.Fatalf("unexpected warn level: %v %v", lvl, ok)
	}
	if lvl, ok := ParseLogLevel("verbose"); ok || lvl != slog.LevelInfo {
		t.Fatalf("unknown level must default to info")
	}
}
