package view

import (
	"strings"

	"github.com/Iron-Ham/playground/internal/tui/styles"
	"github.com/charmbracelet/glamour"
	gansi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Markdown renders scenario descriptions. Renderers are cached per wrap
// width. A nil *Markdown, or a disabled one, renders plain wrapped text.
type Markdown struct {
	enabled   bool
	style     gansi.StyleConfig
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdown returns a Markdown renderer styled for theme. When enabled is
// false all text is rendered plain. Call it after the theme is applied.
func NewMarkdown(enabled bool, theme string) *Markdown {
	return &Markdown{
		enabled:   enabled,
		style:     markdownStyle(theme),
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// markdownStyle picks the glamour base style for theme and colors headings,
// emphasis and links from the active palette.
func markdownStyle(theme string) gansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if theme == string(styles.ThemeDracula) {
		cfg = glamourstyles.DraculaStyleConfig
	}

	primary := string(styles.PrimaryColor)
	secondary := string(styles.SecondaryColor)
	if primary != "" {
		cfg.Heading.Color = &primary
		cfg.Strong.Color = &primary
	}
	if secondary != "" {
		cfg.Link.Color = &secondary
		cfg.LinkText.Color = &secondary
	}
	return cfg
}

// Render renders text wrapped to width.
func (m *Markdown) Render(text string, width int) string {
	if width < 20 {
		width = 20
	}
	if m == nil || !m.enabled {
		return plain(text, width)
	}

	r, ok := m.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStyles(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			m.enabled = false
			return plain(text, width)
		}
		m.renderers[width] = r
	}

	out, err := r.Render(text)
	if err != nil {
		return plain(text, width)
	}
	return strings.Trim(out, "\n")
}

func plain(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(text))
}
