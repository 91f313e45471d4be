package styles

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile is a custom theme definition loaded from YAML.
type ThemeFile struct {
	Name   string      `yaml:"name"`
	Base   string      `yaml:"base,omitempty"` // built-in theme filling unset colors
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors lists hex colors (#RRGGBB or #RGB). Empty entries inherit from
// the base theme.
type ThemeColors struct {
	Primary   string `yaml:"primary,omitempty"`
	Secondary string `yaml:"secondary,omitempty"`
	Warning   string `yaml:"warning,omitempty"`
	Error     string `yaml:"error,omitempty"`
	Muted     string `yaml:"muted,omitempty"`
	Surface   string `yaml:"surface,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Border    string `yaml:"border,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads and validates a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if t.Base != "" && !IsBuiltinTheme(t.Base) {
		errs = append(errs, fmt.Errorf("unknown base theme %q", t.Base))
	}
	for field, value := range t.Colors.byField() {
		if value != "" && !hexColorRegex.MatchString(value) {
			errs = append(errs, fmt.Errorf("colors.%s: invalid hex color %q", field, value))
		}
	}
	return errors.Join(errs...)
}

// Palette resolves the theme against its base.
func (t *ThemeFile) Palette() Palette {
	p := PaletteFor(t.Base)
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&p.Primary, t.Colors.Primary)
	set(&p.Secondary, t.Colors.Secondary)
	set(&p.Warning, t.Colors.Warning)
	set(&p.Error, t.Colors.Error)
	set(&p.Muted, t.Colors.Muted)
	set(&p.Surface, t.Colors.Surface)
	set(&p.Text, t.Colors.Text)
	set(&p.Border, t.Colors.Border)
	return p
}

func (c ThemeColors) byField() map[string]string {
	return map[string]string{
		"primary":   c.Primary,
		"secondary": c.Secondary,
		"warning":   c.Warning,
		"error":     c.Error,
		"muted":     c.Muted,
		"surface":   c.Surface,
		"text":      c.Text,
		"border":    c.Border,
	}
}

// ApplyTheme applies the custom theme file if one is given, otherwise the
// named built-in theme.
func ApplyTheme(name, file string) error {
	if file == "" {
		Apply(PaletteFor(name))
		return nil
	}
	theme, err := LoadThemeFile(file)
	if err != nil {
		return err
	}
	Apply(theme.Palette())
	return nil
}
