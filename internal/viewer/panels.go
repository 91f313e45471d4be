package viewer

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/Iron-Ham/playground/internal/api"
)

// Panel is one labeled entry of the live dashboard.
type Panel struct {
	Key   string
	Label string
	Body  string
	// Structured is true when Body is indented JSON of a map or slice.
	Structured bool
}

// Panels turns a snapshot into one panel per top-level key. Keys declared as
// dashboard components come first, in declaration order and labeled with the
// component name; the rest follow sorted by key.
func Panels(snap api.Snapshot, components []api.DashboardComponent) []Panel {
	if len(snap) == 0 {
		return nil
	}

	panels := make([]Panel, 0, len(snap))
	seen := make(map[string]bool, len(snap))
	for _, c := range components {
		v, ok := snap[c.ID]
		if !ok || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		label := c.Name
		if label == "" {
			label = c.ID
		}
		panels = append(panels, newPanel(c.ID, label, v))
	}

	rest := make([]string, 0, len(snap))
	for k := range snap {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	for _, k := range rest {
		panels = append(panels, newPanel(k, k, snap[k]))
	}
	return panels
}

func newPanel(key, label string, v any) Panel {
	body, structured := FormatValue(v)
	return Panel{Key: key, Label: label, Body: body, Structured: structured}
}

// FormatValue renders a snapshot value. Maps and slices become two-space
// indented JSON; scalars are printed verbatim.
func FormatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "null", true
	case string:
		return val, false
	case bool:
		return strconv.FormatBool(val), false
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), false
	case json.Number:
		return val.String(), false
	case int, int32, int64, uint, uint32, uint64, float32:
		return fmt.Sprint(val), false
	default:
		data, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", val), false
		}
		return string(data), true
	}
}
