package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName identifies a built-in color theme.
type ThemeName string

const (
	ThemeDefault ThemeName = "default" // Violet on dark gray
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
)

// BuiltinThemes returns the names of the built-in themes.
func BuiltinThemes() []string {
	return []string{string(ThemeDefault), string(ThemeNord), string(ThemeDracula)}
}

// IsBuiltinTheme reports whether name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// Palette is the set of colors every style is derived from.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color
}

// DefaultPalette returns the default theme palette. All colors meet WCAG AA
// contrast on dark surfaces.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#4C566A"), // Polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Polar night 1
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#44475A"),
	}
}

// PaletteFor returns the palette of a built-in theme, falling back to the
// default palette for unknown names.
func PaletteFor(name string) Palette {
	switch ThemeName(name) {
	case ThemeNord:
		return NordPalette()
	case ThemeDracula:
		return DraculaPalette()
	default:
		return DefaultPalette()
	}
}
