package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "poll.interval_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Bounds shared with the TUI layout.
const (
	MinSidebarWidth = 20
	MaxSidebarWidth = 60
	MinPollInterval = 100
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the names of the built-in themes. Must match
// styles.BuiltinThemes (kept separate to avoid an import cycle).
func ValidThemes() []string {
	return []string{"default", "nord", "dracula"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validatePoll()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	u, err := url.ParseRequestURI(c.API.BaseURL)
	switch {
	case c.API.BaseURL == "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "cannot be empty",
		})
	case err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be an absolute http or https URL",
		})
	}

	if c.API.RequestTimeoutMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "api.request_timeout_ms",
			Value:   c.API.RequestTimeoutMs,
			Message: "must be non-negative (0 disables timeout)",
		})
	}

	return errors
}

func (c *Config) validatePoll() []ValidationError {
	if c.Poll.IntervalMs < MinPollInterval {
		return []ValidationError{{
			Field:   "poll.interval_ms",
			Value:   c.Poll.IntervalMs,
			Message: fmt.Sprintf("must be at least %dms", MinPollInterval),
		}}
	}
	return nil
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// 0 means use the default.
	if c.TUI.SidebarWidth != 0 {
		if c.TUI.SidebarWidth < MinSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("must be at least %d columns", MinSidebarWidth),
			})
		}
		if c.TUI.SidebarWidth > MaxSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", MaxSidebarWidth),
			})
		}
	}

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative (0 disables rotation)",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
