package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Paging.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.Paging.PageSize)
	}
	if cfg.Paging.WindowSize != 5 {
		t.Errorf("WindowSize = %d, want 5", cfg.Paging.WindowSize)
	}
	if cfg.General.DefaultIntervalType != "month" {
		t.Errorf("DefaultIntervalType = %q, want month", cfg.General.DefaultIntervalType)
	}
	if cfg.API.BaseURL == "" {
		t.Error("BaseURL default is empty")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Fatalf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://finance.example.com/expenseapp"
	cfg.Paging.PageSize = 25
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.API.BaseURL != cfg.API.BaseURL {
		t.Fatalf("BaseURL = %q, want %q", loaded.API.BaseURL, cfg.API.BaseURL)
	}
	if loaded.Paging.PageSize != 25 {
		t.Fatalf("PageSize = %d, want 25", loaded.Paging.PageSize)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Fatalf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BETTERO_API_URL", "https://override.example.com")
	t.Setenv("BETTERO_THEME", "catppuccin-mocha")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://override.example.com" {
		t.Fatalf("BaseURL = %q, env override lost", cfg.API.BaseURL)
	}
	if cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Fatalf("Theme = %q, env override lost", cfg.Appearance.Theme)
	}
}

func TestXDGPaths(t *testing.T) {
	confDir := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confDir)
	t.Setenv("XDG_DATA_HOME", dataDir)

	if got, want := Path(), filepath.Join(confDir, "bettero", "config.toml"); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
	if got, want := StorePath(), filepath.Join(dataDir, "bettero", "bettero.db"); got != want {
		t.Fatalf("StorePath() = %q, want %q", got, want)
	}
	if got, want := LogPath(), filepath.Join(dataDir, "bettero", "bettero.log"); got != want {
		t.Fatalf("LogPath() = %q, want %q", got, want)
	}
}

func TestDurations(t *testing.T) {
	if got := (APIConfig{TimeoutSec: 30}).Timeout(); got != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", got)
	}
	if got := (APIConfig{}).Timeout(); got != 10*time.Second {
		t.Errorf("zero Timeout = %v, want 10s fallback", got)
	}
	if got := (CacheConfig{MaxAgeSec: 120}).MaxAge(); got != 2*time.Minute {
		t.Errorf("MaxAge = %v, want 2m", got)
	}
	if got := (CacheConfig{}).MaxAge(); got != time.Minute {
		t.Errorf("zero MaxAge = %v, want 1m fallback", got)
	}
}

func TestMain(m *testing.M) {
	// Keep a stray .env in the working directory from leaking into tests.
	_ = os.Unsetenv("BETTERO_API_URL")
	_ = os.Unsetenv("BETTERO_THEME")
	os.Exit(m.Run())
}
