package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/tui/keymap"
	"github.com/Iron-Ham/playground/internal/tui/styles"
	"github.com/Iron-Ham/playground/internal/viewer"
	"github.com/charmbracelet/lipgloss"
)

// DetailState is what the detail pane needs to render.
type DetailState struct {
	Detail         *viewer.Detail
	Spinner        string
	ActionCursor   int
	ActionsFocused bool
	Markdown       *Markdown
}

// RenderDetail renders the scenario detail pane at the given width. The
// result is meant to be placed in a scrolling viewport.
func RenderDetail(s DetailState, width int) string {
	d := s.Detail
	if d == nil {
		return ""
	}

	switch d.Phase() {
	case viewer.PhaseLoading:
		return s.Spinner + " Loading..."
	case viewer.PhaseError:
		return RenderErrorBanner(d.ErrorMessage(), width)
	case viewer.PhaseReady:
	default:
		return ""
	}

	sc := d.Scenario()
	var b strings.Builder

	title := styles.Title.Render(sc.Title)
	if sc.Category != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", styles.Subtitle.Render(sc.Category))
	}
	b.WriteString(title)
	b.WriteString("\n")

	if sc.ProblemDescription != "" {
		b.WriteString(s.Markdown.Render(sc.ProblemDescription, width))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.SectionHead.Render("Solution"))
	b.WriteString("\n")
	b.WriteString(s.Markdown.Render(sc.SolutionDescription, width))
	b.WriteString("\n")
	if sc.DeepDiveLink != "" {
		b.WriteString(styles.Muted.Render("Deep dive: "))
		b.WriteString(styles.Primary.Render(sc.DeepDiveLink))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SectionHead.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(RenderActions(sc.Actions, d.ActionPending(), s.ActionsFocused, s.ActionCursor, width))
	b.WriteString("\n\n")

	b.WriteString(styles.SectionHead.Render("Live Dashboard"))
	b.WriteString("\n")
	b.WriteString(RenderPanels(viewer.Panels(d.Snapshot(), sc.DashboardComponents), width))
	if at := d.UpdatedAt(); !at.IsZero() {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("Last updated " + at.Format(time.TimeOnly)))
	}
	return b.String()
}

// RenderActions renders the action bar. Every button is drawn disabled while
// an action is pending.
func RenderActions(actions []api.Action, pending, focused bool, cursor, width int) string {
	if len(actions) == 0 {
		return styles.Muted.Render("No actions")
	}

	buttons := make([]string, 0, len(actions))
	for i, a := range actions {
		label := a.Name
		if label == "" {
			label = a.ID
		}
		if i < keymap.MaxActionHotkeys {
			label = fmt.Sprintf("%d %s", i+1, label)
		}

		style := styles.Button
		switch {
		case pending:
			style = styles.ButtonDisabled
		case focused && i == cursor:
			style = styles.ButtonFocused
		}
		buttons = append(buttons, style.Render(label))
	}

	// Wrap buttons onto rows that fit the width.
	var rows []string
	var row []string
	rowWidth := 0
	for _, btn := range buttons {
		w := lipgloss.Width(btn)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, btn)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	out := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if pending {
		out += "\n" + styles.Muted.Render("Running action...")
	}
	return out
}

// RenderPanels renders one bordered panel per snapshot entry.
func RenderPanels(panels []viewer.Panel, width int) string {
	if len(panels) == 0 {
		return styles.Muted.Render("No state yet")
	}
	box := styles.PanelBox.Width(contentWidth(width))
	out := make([]string, 0, len(panels))
	for _, p := range panels {
		out = append(out, box.Render(
			styles.PanelLabel.Render(p.Label+":")+"\n"+styles.PanelBody.Render(p.Body),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
