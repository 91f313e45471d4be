package msg

import (
	"time"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/viewer"
)

// ScenariosLoadedMsg carries the result of the scenario list fetch.
type ScenariosLoadedMsg struct {
	Scenarios []api.ScenarioSummary
	Err       error
}

// ScenarioLoadedMsg carries the combined detail and state load for a selection.
type ScenarioLoadedMsg struct {
	Token    viewer.Token
	ID       string
	Scenario *api.Scenario
	Snapshot api.Snapshot
	Err      error
	At       time.Time
}

// PollTickMsg fires when a selection's poll interval elapses.
type PollTickMsg struct {
	Gen uint64
	At  time.Time
}

// StatePolledMsg carries one state poll.
type StatePolledMsg struct {
	Token    viewer.Token
	ID       string
	Snapshot api.Snapshot
	Err      error
	At       time.Time
}

// ActionDoneMsg reports that an action request settled.
type ActionDoneMsg struct {
	Token    viewer.Token
	ID       string
	ActionID string
	Result   api.ActionResult
	Err      error
}
