package view

import (
	"strings"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/tui/styles"
	"github.com/Iron-Ham/playground/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// SidebarTitle heads the scenario menu.
const SidebarTitle = "SYS DESIGN PLAYGROUND"

// SidebarState is what the scenario menu needs to render.
type SidebarState struct {
	Scenarios []api.ScenarioSummary
	Loading   bool
	Spinner   string // current spinner frame, shown while Loading
	Selected  string // active scenario id
	Cursor    int
	Focused   bool // the menu has keyboard focus
}

// RenderSidebar renders the scenario menu inside a bordered box of the given
// outer width and height.
func RenderSidebar(s SidebarState, width, height int) string {
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	var b strings.Builder
	b.WriteString(styles.SidebarTitle.Render(util.Truncate(SidebarTitle, inner)))
	b.WriteString("\n")

	switch {
	case s.Loading:
		b.WriteString(s.Spinner + " Loading...")
	case len(s.Scenarios) == 0:
		b.WriteString(styles.Muted.Render("No scenarios"))
	default:
		for i, sc := range s.Scenarios {
			b.WriteString(renderMenuItem(sc, i, s, inner))
			b.WriteString("\n")
		}
	}

	box := styles.Sidebar.Width(width - 2)
	if height > 2 {
		box = box.Height(height - 2)
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

func renderMenuItem(sc api.ScenarioSummary, i int, s SidebarState, width int) string {
	marker := "  "
	if s.Focused && i == s.Cursor {
		marker = styles.SidebarCursor.Render("▸ ")
	}

	label := sc.Title
	if label == "" {
		label = sc.ID
	}
	label = util.Truncate(label, width-4)

	if sc.ID == s.Selected {
		return marker + styles.SidebarItemActive.Render(label)
	}
	line := marker + styles.SidebarItem.Render(label)
	// Category only when it fits on the same line.
	if sc.Category != "" && lipgloss.Width(label)+lipgloss.Width(sc.Category)+3 <= width-4 {
		line += styles.Muted.Render("(" + sc.Category + ")")
	}
	return line
}
