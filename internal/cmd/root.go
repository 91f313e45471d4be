// Package cmd wires the playground's command line: the interactive TUI on
// the root command plus scripting subcommands that talk to the same backend.
package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/config"
	"github.com/Iron-Ham/playground/internal/logging"
	"github.com/Iron-Ham/playground/internal/tui"
	"github.com/Iron-Ham/playground/internal/tui/styles"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "playground",
	Short: "Terminal client for the system design scenario playground",
	Long: `Playground is a terminal client for a system design scenario backend.

Pick a scenario from the menu to read about the problem and its solution,
trigger actions against the simulation, and watch its state update live.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/playground/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "backend API base URL (default http://localhost:8080/api)")
	rootCmd.Flags().Int("poll-interval", 0, "state poll interval in milliseconds (default 2000)")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("poll.interval_ms", rootCmd.Flags().Lookup("poll-interval"))

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/playground")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PLAYGROUND")
	// Replace dots with underscores for nested keys in env vars
	// e.g., PLAYGROUND_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if err := styles.ApplyTheme(cfg.TUI.Theme, cfg.TUI.ThemeFile); err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	watchConfig(logger)
	logger.Info("starting playground",
		"api", client.BaseURL(),
		"poll_interval", cfg.Poll.Interval().String(),
		"theme", cfg.TUI.Theme,
	)

	app := tui.New(client, tui.Options{
		PollInterval:   cfg.Poll.Interval(),
		SidebarWidth:   cfg.TUI.SidebarWidth,
		RenderMarkdown: cfg.TUI.RenderMarkdown,
		Theme:          cfg.TUI.Theme,
		Logger:         logger,
	})
	return app.Run()
}

// newLogger builds the file logger described by cfg, or a discarding logger
// when logging is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, nil
}

func newClient(cfg *config.Config, logger *logging.Logger) (*api.Client, error) {
	client, err := api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.RequestTimeout()),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid api.base_url: %w", err)
	}
	return client, nil
}

// watchConfig logs edits to the active config file. Settings are read once
// at startup, so edits apply on the next run.
func watchConfig(logger *logging.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Info("config file changed, restart to apply",
			"file", e.Name,
			"op", e.Op.String(),
		)
	})
	viper.WatchConfig()
}
