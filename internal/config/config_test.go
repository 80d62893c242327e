package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MATRICHECK_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bridge.URL != "http://127.0.0.1:8626" {
		t.Errorf("bridge.url = %q", cfg.Bridge.URL)
	}
	if cfg.Bridge.TimeoutSeconds != 15 {
		t.Errorf("bridge.timeout_seconds = %d, want 15", cfg.Bridge.TimeoutSeconds)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("ui.language = %q, want en", cfg.UI.Language)
	}
	if !strings.Contains(cfg.Server.DatabasePath, "matricheck.db") {
		t.Errorf("server.database_path = %q", cfg.Server.DatabasePath)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MATRICHECK_CONFIG", "")
	t.Setenv("MATRICHECK_BRIDGE_URL", "http://10.0.0.5:9000")
	t.Setenv("MATRICHECK_UI_LANGUAGE", "bn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bridge.URL != "http://10.0.0.5:9000" {
		t.Errorf("bridge.url = %q, want env override", cfg.Bridge.URL)
	}
	if cfg.UI.Language != "bn" {
		t.Errorf("ui.language = %q, want bn", cfg.UI.Language)
	}
}

func TestSaveRoundTripsLanguage(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	t.Setenv("HOME", tmp)
	t.Setenv("MATRICHECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.UI.Language = "bn"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	again, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.UI.Language != "bn" {
		t.Errorf("persisted ui.language = %q, want bn", again.UI.Language)
	}
	if again.Bridge.URL != cfg.Bridge.URL {
		t.Errorf("bridge.url changed across save: %q -> %q", cfg.Bridge.URL, again.Bridge.URL)
	}
}
