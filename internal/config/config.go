package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete playground configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Poll    PollConfig    `mapstructure:"poll"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the backend is reached
type APIConfig struct {
	// BaseURL is the root of the scenario API, including its path prefix
	// (default: "http://localhost:8080/api")
	BaseURL string `mapstructure:"base_url"`
	// RequestTimeoutMs bounds each HTTP request (0 = no timeout, the transport default)
	RequestTimeoutMs int `mapstructure:"request_timeout_ms"`
}

// PollConfig controls the state poll loop of the detail pane
type PollConfig struct {
	// IntervalMs is the period between state fetches (default: 2000)
	IntervalMs int `mapstructure:"interval_ms"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// SidebarWidth is the width of the scenario menu in columns (default: 32, min: 20, max: 60)
	SidebarWidth int `mapstructure:"sidebar_width"`
	// Theme is a built-in color theme: "default", "nord" or "dracula"
	Theme string `mapstructure:"theme"`
	// ThemeFile is an optional path to a custom YAML theme; it overrides Theme
	ThemeFile string `mapstructure:"theme_file"`
	// RenderMarkdown renders scenario descriptions as markdown (default: true)
	RenderMarkdown bool `mapstructure:"render_markdown"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Dir is where debug.log is written. Empty means <config dir>/logs.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:          "http://localhost:8080/api",
			RequestTimeoutMs: 0,
		},
		Poll: PollConfig{
			IntervalMs: 2000,
		},
		TUI: TUIConfig{
			SidebarWidth:   32,
			Theme:          "default",
			ThemeFile:      "",
			RenderMarkdown: true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Dir:        "",
		},
	}
}

// RequestTimeout returns the request timeout as a time.Duration (0 means none)
func (c *APIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// Interval returns the poll period as a time.Duration
func (c *PollConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// ResolveDir returns the directory debug.log is written to.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}
	return expandHome(c.Dir)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.request_timeout_ms", defaults.API.RequestTimeoutMs)

	viper.SetDefault("poll.interval_ms", defaults.Poll.IntervalMs)

	viper.SetDefault("tui.sidebar_width", defaults.TUI.SidebarWidth)
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.theme_file", defaults.TUI.ThemeFile)
	viper.SetDefault("tui.render_markdown", defaults.TUI.RenderMarkdown)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "playground")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".playground"
	}
	return filepath.Join(home, ".config", "playground")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
