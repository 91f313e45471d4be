package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Iron-Ham/playground/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify playground configuration",
	Long: `View or modify playground configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  playground config set api.base_url http://localhost:9000/api
  playground config set poll.interval_ms 1000
  playground config set tui.theme nord

Valid keys:
  api.base_url            - Backend API base URL
  api.request_timeout_ms  - Per-request timeout in milliseconds (0 = none)
  poll.interval_ms        - State poll interval in milliseconds
  tui.sidebar_width       - Scenario menu width in columns
  tui.theme               - Color theme: default, nord, dracula
  tui.theme_file          - Path to a custom YAML theme
  tui.render_markdown     - Render descriptions as markdown (true/false)
  logging.enabled         - Write debug.log (true/false)
  logging.level           - Log level: debug, info, warn, error
  logging.max_size_mb     - Log size before rotation
  logging.max_backups     - Rotated log files to keep
  logging.dir             - Log directory`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/playground/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// settableKeys maps each key accepted by 'config set' to its value type.
var settableKeys = map[string]string{
	"api.base_url":           "string",
	"api.request_timeout_ms": "int",
	"poll.interval_ms":       "int",
	"tui.sidebar_width":      "int",
	"tui.theme":              "string",
	"tui.theme_file":         "string",
	"tui.render_markdown":    "bool",
	"logging.enabled":        "bool",
	"logging.level":          "string",
	"logging.max_size_mb":    "int",
	"logging.max_backups":    "int",
	"logging.dir":            "string",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Get()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "api:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  request_timeout_ms: %d\n", cfg.API.RequestTimeoutMs)

	fmt.Fprintln(out, "poll:")
	fmt.Fprintf(out, "  interval_ms: %d\n", cfg.Poll.IntervalMs)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  sidebar_width: %d\n", cfg.TUI.SidebarWidth)
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  theme_file: %s\n", cfg.TUI.ThemeFile)
	fmt.Fprintf(out, "  render_markdown: %v\n", cfg.TUI.RenderMarkdown)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.ResolveDir())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	keyType, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'playground config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue any
	switch keyType {
	case "string":
		typedValue = value
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = b
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typedValue = intVal
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)

	return nil
}

const defaultConfigContent = `# Playground Configuration

# Scenario backend
api:
  # Base URL of the scenario API, including the /api prefix
  base_url: http://localhost:8080/api
  # Per-request timeout in milliseconds (0 = no timeout)
  request_timeout_ms: 0

# Live state polling
poll:
  # How often the selected scenario's state is refreshed, in milliseconds
  interval_ms: 2000

# TUI (terminal user interface) settings
tui:
  # Width of the scenario menu in columns (20-60)
  sidebar_width: 32
  # Color theme: default, nord, dracula
  theme: default
  # Optional path to a custom YAML theme (overrides theme)
  theme_file: ""
  # Render problem and solution descriptions as markdown
  render_markdown: true

# Debug logging (written to <config dir>/logs/debug.log unless dir is set)
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  max_size_mb: 10
  max_backups: 3
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'playground config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize the playground.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/playground/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintf(out, "\nEnvironment variables: PLAYGROUND_* (e.g., %s)\n", envVarName("api.base_url"))

	return nil
}

func envVarName(key string) string {
	return "PLAYGROUND_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
