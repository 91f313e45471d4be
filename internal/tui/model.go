package tui

import (
	"strings"
	"time"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/logging"
	"github.com/Iron-Ham/playground/internal/tui/keymap"
	"github.com/Iron-Ham/playground/internal/tui/msg"
	"github.com/Iron-Ham/playground/internal/tui/view"
	"github.com/Iron-Ham/playground/internal/viewer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListErrorMessage is shown when the scenario list cannot be fetched.
const ListErrorMessage = "Could not connect to the backend. Please ensure it's running."

// Backend is everything the TUI needs from the scenario API.
type Backend interface {
	msg.Lister
	viewer.Source
}

// Options configure the TUI.
type Options struct {
	PollInterval   time.Duration // default viewer.DefaultPollInterval
	SidebarWidth   int           // default DefaultSidebarWidth
	RenderMarkdown bool
	Theme          string // built-in theme name; picks the markdown base style
	Logger         *logging.Logger
}

type focusArea int

const (
	focusMenu focusArea = iota
	focusActions
)

type quitMsg struct{}

// Model is the Bubbletea model of the playground.
type Model struct {
	backend Backend
	logger  *logging.Logger

	keys     keymap.KeyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	markdown *view.Markdown

	// Shell
	scenarios    []api.ScenarioSummary
	loading      bool
	errorMessage string
	cursor       int
	focus        focusArea

	// Detail pane
	detail       *viewer.Detail
	actionCursor int

	pollInterval time.Duration
	sidebarWidth int
	width        int
	height       int
	ready        bool
	quitting     bool
}

// NewModel creates a model that has not yet fetched anything. The scenario
// list is requested by Init.
func NewModel(backend Backend, opts Options) Model {
	if opts.PollInterval <= 0 {
		opts.PollInterval = viewer.DefaultPollInterval
	}
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = DefaultSidebarWidth
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		backend:      backend,
		logger:       opts.Logger.With("component", "tui"),
		keys:         keymap.Default(),
		help:         help.New(),
		spinner:      sp,
		viewport:     viewport.New(0, 0),
		markdown:     view.NewMarkdown(opts.RenderMarkdown, opts.Theme),
		loading:      true,
		detail:       viewer.NewDetail(),
		pollInterval: opts.PollInterval,
		sidebarWidth: opts.SidebarWidth,
	}
}

// Init issues the one and only scenario list request.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, msg.ListScenarios(m.backend))
}

// Update handles incoming messages
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(message)

	case quitMsg:
		return m.quit()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		if !m.loading && m.detail.Phase() != viewer.PhaseLoading {
			// Nothing is spinning; selectScenario restarts the loop.
			return m, nil
		}
		m.syncViewport()
		return m, cmd

	case msg.ScenariosLoadedMsg:
		m.loading = false
		if message.Err != nil {
			m.logger.Error("failed to list scenarios", "error", message.Err)
			m.errorMessage = ListErrorMessage
			m.scenarios = nil
			return m, nil
		}
		m.scenarios = message.Scenarios
		m.logger.Info("scenarios loaded", "count", len(m.scenarios))
		return m, nil

	case msg.ScenarioLoadedMsg:
		if !m.detail.ApplyLoad(message.Token, message.Scenario, message.Snapshot, message.Err, message.At) {
			m.logger.Debug("dropped stale scenario load", "scenario_id", message.ID, "gen", message.Token.Gen)
			return m, nil
		}
		if message.Err != nil {
			m.logger.WithScenario(message.ID).Error("failed to load scenario", "error", message.Err)
		}
		m.actionCursor = 0
		m.syncViewport()
		return m, nil

	case msg.PollTickMsg:
		cmd := m.poll(message.Gen)
		return m, cmd

	case msg.StatePolledMsg:
		if message.Err != nil {
			if m.detail.Current(message.Token) {
				m.logger.WithScenario(message.ID).Warn("state poll failed", "error", message.Err)
			}
			return m, nil
		}
		if m.detail.ApplyPoll(message.Token, message.Snapshot, nil, message.At) {
			m.syncViewport()
		}
		return m, nil

	case msg.ActionDoneMsg:
		log := m.logger.WithScenario(message.ID)
		if message.Err != nil {
			log.Error("action failed", "action_id", message.ActionID, "error", message.Err)
		} else {
			log.Info("action sent", "action_id", message.ActionID, "status", message.Result.Status)
		}
		if m.detail.EndAction(message.Token) {
			m.syncViewport()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeypress(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m.quit()

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(k, m.keys.Up):
		m.focus = focusMenu
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(k, m.keys.Down):
		m.focus = focusMenu
		if m.cursor < len(m.scenarios)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(k, m.keys.Focus):
		if m.focus == focusMenu && len(m.actions()) > 0 {
			m.focus = focusActions
		} else {
			m.focus = focusMenu
		}
		m.syncViewport()
		return m, nil

	case key.Matches(k, m.keys.ActionLeft):
		if m.focus == focusActions && m.actionCursor > 0 {
			m.actionCursor--
			m.syncViewport()
		}
		return m, nil

	case key.Matches(k, m.keys.ActionRight):
		if m.focus == focusActions && m.actionCursor < len(m.actions())-1 {
			m.actionCursor++
			m.syncViewport()
		}
		return m, nil

	case key.Matches(k, m.keys.Select):
		var cmd tea.Cmd
		if m.focus == focusActions {
			cmd = m.fireAction(m.actionCursor)
		} else if m.cursor < len(m.scenarios) {
			cmd = m.selectScenario(m.scenarios[m.cursor].ID)
		}
		return m, cmd

	case key.Matches(k, m.keys.Fire):
		var cmd tea.Cmd
		if idx, ok := keymap.ActionIndex(k.String()); ok {
			cmd = m.fireAction(idx)
		}
		return m, cmd

	case key.Matches(k, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil

	case key.Matches(k, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil
	}
	return m, nil
}

// selectScenario switches the detail pane to id and starts its load and poll
// loop. Reselecting the active scenario does nothing.
func (m *Model) selectScenario(id string) tea.Cmd {
	tok, ok := m.detail.Select(id)
	if !ok {
		return nil
	}
	m.actionCursor = 0
	m.viewport.GotoTop()
	m.syncViewport()
	m.logger.WithScenario(id).Info("scenario selected", "gen", tok.Gen)

	return tea.Batch(
		m.spinner.Tick,
		msg.LoadScenario(m.detail.Context(), m.backend, id, tok),
		msg.PollTick(tok.Gen, m.pollInterval),
	)
}

// poll fetches state for gen and re-arms the timer. Ticks of a retired
// generation end their loop here.
func (m *Model) poll(gen uint64) tea.Cmd {
	if !m.detail.CurrentGen(gen) {
		return nil
	}
	tok := m.detail.Issue()
	return tea.Batch(
		msg.PollState(m.detail.Context(), m.backend, m.detail.ID(), tok),
		msg.PollTick(gen, m.pollInterval),
	)
}

// fireAction dispatches the idx-th action of the loaded scenario unless an
// action is already in flight.
func (m *Model) fireAction(idx int) tea.Cmd {
	actions := m.actions()
	if idx < 0 || idx >= len(actions) {
		return nil
	}
	tok, ok := m.detail.BeginAction()
	if !ok {
		return nil
	}
	m.actionCursor = idx
	m.syncViewport()

	id, actionID := m.detail.ID(), actions[idx].ID
	m.logger.WithScenario(id).Debug("sending action", "action_id", actionID)
	return msg.TriggerAction(m.backend, id, actionID, tok)
}

func (m Model) actions() []api.Action {
	if sc := m.detail.Scenario(); sc != nil {
		return sc.Actions
	}
	return nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.detail.Close()
	return m, tea.Quit
}

// resize recomputes the viewport size from the terminal size.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	_, mainWidth, mainHeight := CalculateLayout(m.width, m.height, m.sidebarWidth)
	m.help.Width = m.width
	height := mainHeight - m.bannerHeight(mainWidth)
	if m.help.ShowAll {
		height -= lipgloss.Height(m.help.View(m.keys)) - 1
	}
	if height < 1 {
		height = 1
	}
	m.viewport.Width = mainWidth
	m.viewport.Height = height
	m.syncViewport()
}

func (m Model) bannerHeight(width int) int {
	if m.errorMessage == "" {
		return 0
	}
	return lipgloss.Height(view.RenderErrorBanner(m.errorMessage, width))
}

// syncViewport re-renders the detail pane into the viewport.
func (m *Model) syncViewport() {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	m.viewport.SetContent(view.RenderDetail(view.DetailState{
		Detail:         m.detail,
		Spinner:        m.spinner.View(),
		ActionCursor:   m.actionCursor,
		ActionsFocused: m.focus == focusActions,
		Markdown:       m.markdown,
	}, width-2))
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	sidebar, mainWidth, mainHeight := CalculateLayout(m.width, m.height, m.sidebarWidth)

	menu := view.RenderSidebar(view.SidebarState{
		Scenarios: m.scenarios,
		Loading:   m.loading,
		Spinner:   m.spinner.View(),
		Selected:  m.detail.ID(),
		Cursor:    m.cursor,
		Focused:   m.focus == focusMenu,
	}, sidebar, mainHeight)

	var main strings.Builder
	if banner := view.RenderErrorBanner(m.errorMessage, mainWidth); banner != "" {
		main.WriteString(banner)
		main.WriteString("\n")
	}
	switch {
	case m.detail.ID() != "":
		main.WriteString(m.viewport.View())
	case m.errorMessage == "":
		main.WriteString(view.RenderWelcome(mainWidth))
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		menu,
		strings.Repeat(" ", paneGap),
		lipgloss.NewStyle().Width(mainWidth).Render(main.String()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.help.View(m.keys))
}
