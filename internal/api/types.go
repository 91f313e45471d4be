package api

// ScenarioSummary is a menu entry returned by the list endpoint.
type ScenarioSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
}

// Action is a named command a user can issue against a scenario.
type Action struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DashboardComponent declares one piece of state the backend exposes in its
// snapshot. The ID matches a snapshot key.
type DashboardComponent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"` // e.g. "key_value", "log_stream"
}

// Scenario is the full detail of a single scenario. It does not change for
// the lifetime of a selection.
type Scenario struct {
	ID                  string               `json:"id"`
	Title               string               `json:"title"`
	Category            string               `json:"category,omitempty"`
	ProblemDescription  string               `json:"problem_description"`
	SolutionDescription string               `json:"solution_description"`
	DeepDiveLink        string               `json:"deep_dive_link,omitempty"`
	Actions             []Action             `json:"actions"`
	DashboardComponents []DashboardComponent `json:"dashboard_components,omitempty"`
}

// Action returns the action with the given ID.
func (s *Scenario) Action(id string) (Action, bool) {
	for _, a := range s.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Snapshot is the opaque state of a scenario as reported by the backend.
// Values are whatever JSON decoded into: scalars, maps, or slices.
type Snapshot map[string]any

// ActionResult is the backend's reply to an action. The TUI never feeds it
// into view state; the CLI prints it.
type ActionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}
