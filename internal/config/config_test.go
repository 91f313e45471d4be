package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeoutMs != 0 {
		t.Errorf("API.RequestTimeoutMs = %d, want 0", cfg.API.RequestTimeoutMs)
	}
	if cfg.Poll.IntervalMs != 2000 {
		t.Errorf("Poll.IntervalMs = %d, want 2000", cfg.Poll.IntervalMs)
	}
	if cfg.TUI.SidebarWidth != 32 {
		t.Errorf("TUI.SidebarWidth = %d, want 32", cfg.TUI.SidebarWidth)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want default", cfg.TUI.Theme)
	}
	if !cfg.TUI.RenderMarkdown {
		t.Error("TUI.RenderMarkdown should be true by default")
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if got := cfg.Poll.Interval(); got != 2*time.Second {
		t.Errorf("Poll.Interval() = %v, want 2s", got)
	}
	if got := cfg.API.RequestTimeout(); got != 0 {
		t.Errorf("API.RequestTimeout() = %v, want 0", got)
	}
	cfg.API.RequestTimeoutMs = 1500
	if got := cfg.API.RequestTimeout(); got != 1500*time.Millisecond {
		t.Errorf("API.RequestTimeout() = %v, want 1.5s", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got := ConfigDir(); got != "/custom/config/playground" {
			t.Errorf("ConfigDir() = %q", got)
		}
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		want := filepath.Join(home, ".config", "playground")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigFile(); got != "/xdg/playground/config.yaml" {
		t.Errorf("ConfigFile() = %q", got)
	}
}

func TestLoggingResolveDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	lc := LoggingConfig{}
	if got := lc.ResolveDir(); got != "/xdg/playground/logs" {
		t.Errorf("ResolveDir() = %q", got)
	}

	lc.Dir = "/var/log/playground"
	if got := lc.ResolveDir(); got != "/var/log/playground" {
		t.Errorf("ResolveDir() = %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	lc.Dir = "~/logs"
	if got := lc.ResolveDir(); got != filepath.Join(home, "logs") {
		t.Errorf("ResolveDir() = %q", got)
	}
}

func TestLoad(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("poll.interval_ms", 500)
	viper.Set("api.base_url", "https://playground.example.com/api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Poll.IntervalMs != 500 {
		t.Errorf("Poll.IntervalMs = %d, want 500", cfg.Poll.IntervalMs)
	}
	if cfg.API.BaseURL != "https://playground.example.com/api" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("defaults should survive: TUI.Theme = %q", cfg.TUI.Theme)
	}
}

func TestLoadInvalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("poll.interval_ms", 10)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject an invalid config")
	}
	if got := Get(); got.Poll.IntervalMs != 2000 {
		t.Errorf("Get() should fall back to defaults, got interval %d", got.Poll.IntervalMs)
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api:\n  base_url: http://10.0.0.5:9000/api\ntui:\n  theme: nord\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://10.0.0.5:9000/api" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.TUI.Theme != "nord" {
		t.Errorf("TUI.Theme = %q, want nord", cfg.TUI.Theme)
	}
	if cfg.Poll.IntervalMs != 2000 {
		t.Errorf("Poll.IntervalMs = %d, want default 2000", cfg.Poll.IntervalMs)
	}
}
