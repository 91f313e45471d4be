package view

import (
	"strings"

	"github.com/Iron-Ham/playground/internal/tui/styles"
)

// Welcome texts shown before any scenario is selected.
const (
	WelcomeTitle = "Welcome!"
	WelcomeHint  = "Please select a scenario from the left menu to begin."
)

// RenderWelcome renders the placeholder shown when nothing is selected.
func RenderWelcome(width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(WelcomeTitle))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(WelcomeHint))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("j/k"))
	b.WriteString(styles.Muted.Render(" move  "))
	b.WriteString(styles.HelpKey.Render("enter"))
	b.WriteString(styles.Muted.Render(" open  "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.Muted.Render(" help"))
	return styles.ContentBox.Width(contentWidth(width)).Render(b.String())
}

// RenderErrorBanner renders a one-line error above the main pane. It
// returns "" for an empty message.
func RenderErrorBanner(message string, width int) string {
	if message == "" {
		return ""
	}
	return styles.ErrorBanner.Width(contentWidth(width)).Render("⚠ " + message)
}

// contentWidth leaves room for a box's border and padding.
func contentWidth(width int) int {
	if width < 14 {
		return 10
	}
	return width - 4
}
