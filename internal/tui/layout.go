package tui

// Layout constants
const (
	DefaultSidebarWidth = 32
	SidebarMinWidth     = 20 // used on narrow terminals

	// Columns between the sidebar and the main pane.
	paneGap = 1
	// Rows reserved below the panes for the help bar.
	helpBarHeight = 2
)

// CalculateLayout returns the sidebar width and the main pane dimensions for
// a terminal of the given size.
func CalculateLayout(termWidth, termHeight, sidebarWidth int) (sidebar, mainWidth, mainHeight int) {
	sidebar = sidebarWidth
	if sidebar <= 0 {
		sidebar = DefaultSidebarWidth
	}
	if termWidth < 80 && sidebar > SidebarMinWidth {
		sidebar = SidebarMinWidth
	}
	mainWidth = termWidth - sidebar - paneGap
	if mainWidth < 20 {
		mainWidth = 20
	}
	mainHeight = termHeight - helpBarHeight
	if mainHeight < 3 {
		mainHeight = 3
	}
	return sidebar, mainWidth, mainHeight
}
