package msg

import (
	"context"
	"time"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/viewer"
	tea "github.com/charmbracelet/bubbletea"
)

// Lister fetches the scenario menu.
type Lister interface {
	ListScenarios(ctx context.Context) ([]api.ScenarioSummary, error)
}

// ListScenarios returns a command that fetches the scenario list once.
func ListScenarios(l Lister) tea.Cmd {
	return func() tea.Msg {
		scenarios, err := l.ListScenarios(context.Background())
		return ScenariosLoadedMsg{Scenarios: scenarios, Err: err}
	}
}

// LoadScenario returns a command that loads detail and state concurrently.
// ctx should be the selection's context so that leaving the scenario
// abandons the requests.
func LoadScenario(ctx context.Context, src viewer.Source, id string, tok viewer.Token) tea.Cmd {
	return func() tea.Msg {
		sc, snap, err := viewer.Load(ctx, src, id)
		return ScenarioLoadedMsg{Token: tok, ID: id, Scenario: sc, Snapshot: snap, Err: err, At: time.Now()}
	}
}

// PollTick returns a command that fires a PollTickMsg for gen after d.
func PollTick(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return PollTickMsg{Gen: gen, At: t}
	})
}

// PollState returns a command that fetches the state snapshot once.
func PollState(ctx context.Context, src viewer.Source, id string, tok viewer.Token) tea.Cmd {
	return func() tea.Msg {
		snap, err := src.GetState(ctx, id)
		return StatePolledMsg{Token: tok, ID: id, Snapshot: snap, Err: err, At: time.Now()}
	}
}

// TriggerAction returns a command that fires an action. The request is not
// tied to the selection's context: once sent, an action runs to completion
// even if the user moves on.
func TriggerAction(src viewer.Source, id, actionID string, tok viewer.Token) tea.Cmd {
	return func() tea.Msg {
		res, err := src.TriggerAction(context.Background(), id, actionID)
		return ActionDoneMsg{Token: tok, ID: id, ActionID: actionID, Result: res, Err: err}
	}
}
