package styles

import "github.com/charmbracelet/lipgloss"

// Styles used across the TUI. They are package variables, like the rest of
// the view code expects, and are rebuilt by Apply when the theme changes.
var (
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	Primary lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	SectionHead lipgloss.Style

	// Sidebar
	Sidebar           lipgloss.Style
	SidebarTitle      lipgloss.Style
	SidebarItem       lipgloss.Style
	SidebarItemActive lipgloss.Style
	SidebarCursor     lipgloss.Style

	// Main pane
	ContentBox  lipgloss.Style
	ErrorBanner lipgloss.Style

	// Action bar
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Live dashboard
	PanelBox   lipgloss.Style
	PanelLabel lipgloss.Style
	PanelBody  lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
)

func init() {
	Apply(DefaultPalette())
}

// Apply rebuilds every style from p.
func Apply(p Palette) {
	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	Primary = lipgloss.NewStyle().Foreground(p.Primary)
	Muted = lipgloss.NewStyle().Foreground(p.Muted)
	Text = lipgloss.NewStyle().Foreground(p.Text)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	SectionHead = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 1)

	SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	SidebarItem = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarItemActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1)

	SidebarCursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	ErrorBanner = lipgloss.NewStyle().
		Foreground(p.Error).
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Error).
		Padding(0, 1).
		MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginRight(1)

	ButtonFocused = Button.
		BorderForeground(p.Primary).
		Bold(true)

	ButtonDisabled = Button.
		Foreground(p.Muted).
		BorderForeground(p.Surface)

	PanelBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginBottom(1)

	PanelLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	PanelBody = lipgloss.NewStyle().
		Foreground(p.Text)

	HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)
}
