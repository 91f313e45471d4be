package view

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/tui/styles"
	"github.com/Iron-Ham/playground/internal/viewer"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func readyDetail(t *testing.T, sc api.Scenario, snap api.Snapshot) *viewer.Detail {
	t.Helper()
	d := viewer.NewDetail()
	tok, ok := d.Select(sc.ID)
	if !ok {
		t.Fatal("Select() returned false")
	}
	if !d.ApplyLoad(tok, &sc, snap, nil, time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC)) {
		t.Fatal("ApplyLoad() returned false")
	}
	return d
}

func sample() api.Scenario {
	return api.Scenario{
		ID:                  "a",
		Title:               "Cache Stampede",
		Category:            "Caching",
		ProblemDescription:  "Many misses at once.",
		SolutionDescription: "Single flight.",
		DeepDiveLink:        "https://example.com/stampede",
		Actions: []api.Action{
			{ID: "expire", Name: "Expire Key"},
			{ID: "burst", Name: "Send Burst"},
		},
		DashboardComponents: []api.DashboardComponent{{ID: "db_queries", Name: "DB Queries"}},
	}
}

func TestRenderWelcome(t *testing.T) {
	out := ansi.Strip(RenderWelcome(80))
	if !strings.Contains(out, WelcomeTitle) || !strings.Contains(out, WelcomeHint) {
		t.Errorf("welcome missing texts:\n%s", out)
	}
}

func TestRenderErrorBanner(t *testing.T) {
	if got := RenderErrorBanner("", 80); got != "" {
		t.Errorf("empty message should render nothing, got %q", got)
	}
	msg := "Could not connect to the backend."
	if out := ansi.Strip(RenderErrorBanner(msg, 80)); !strings.Contains(out, msg) {
		t.Errorf("banner missing message:\n%s", out)
	}
}

func TestRenderSidebar(t *testing.T) {
	state := SidebarState{
		Scenarios: []api.ScenarioSummary{
			{ID: "a", Title: "Cache Stampede"},
			{ID: "b", Title: "Simple CRUD"},
		},
		Selected: "b",
		Cursor:   0,
		Focused:  true,
	}
	out := ansi.Strip(RenderSidebar(state, 40, 20))
	for _, want := range []string{SidebarTitle, "Cache Stampede", "Simple CRUD", "▸"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSidebarLoading(t *testing.T) {
	out := ansi.Strip(RenderSidebar(SidebarState{Loading: true, Spinner: "*"}, 40, 20))
	if !strings.Contains(out, "Loading...") {
		t.Errorf("expected loading indicator:\n%s", out)
	}
	if strings.Contains(out, "No scenarios") {
		t.Error("the menu should not render while loading")
	}
}

func TestRenderDetailReady(t *testing.T) {
	d := readyDetail(t, sample(), api.Snapshot{
		"db_queries": float64(3),
		"cache":      map[string]any{"k": "v"},
	})

	out := ansi.Strip(RenderDetail(DetailState{Detail: d}, 80))
	for _, want := range []string{
		"Cache Stampede", "Caching", "Many misses at once.", "Solution", "Single flight.",
		"https://example.com/stampede", "1 Expire Key", "2 Send Burst",
		"DB Queries:", "3", "cache:", `"k": "v"`, "Last updated 12:30:45",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "DB Queries:") > strings.Index(out, "cache:") {
		t.Error("declared components should render before the remaining keys")
	}
}

func TestRenderDetailPhases(t *testing.T) {
	d := viewer.NewDetail()
	if got := RenderDetail(DetailState{Detail: d}, 80); got != "" {
		t.Errorf("idle detail should render nothing, got %q", got)
	}

	tok, _ := d.Select("a")
	out := ansi.Strip(RenderDetail(DetailState{Detail: d, Spinner: "*"}, 80))
	if !strings.Contains(out, "Loading...") {
		t.Errorf("expected loading text, got %q", out)
	}

	d.ApplyLoad(tok, nil, nil, errors.New("boom"), time.Now())
	out = ansi.Strip(RenderDetail(DetailState{Detail: d}, 80))
	if !strings.Contains(out, viewer.LoadErrorMessage) {
		t.Errorf("expected load error, got %q", out)
	}
	if strings.Contains(out, "boom") {
		t.Error("the underlying error should not be shown")
	}
}

func TestRenderActionsPending(t *testing.T) {
	actions := sample().Actions
	idle := RenderActions(actions, false, true, 0, 80)
	pending := RenderActions(actions, true, true, 0, 80)
	if idle == pending {
		t.Error("pending buttons should render differently")
	}
	if !strings.Contains(ansi.Strip(pending), "Running action...") {
		t.Error("expected a pending notice")
	}
	if out := ansi.Strip(RenderActions(nil, false, false, 0, 80)); !strings.Contains(out, "No actions") {
		t.Errorf("unexpected empty action bar: %q", out)
	}
}

func TestRenderActionsWraps(t *testing.T) {
	var actions []api.Action
	for i := 0; i < 6; i++ {
		actions = append(actions, api.Action{ID: "x", Name: "A long action name"})
	}
	out := ansi.Strip(RenderActions(actions, false, false, 0, 40))
	if lines := strings.Count(out, "\n"); lines < 5 {
		t.Errorf("expected buttons to wrap onto several rows, got %d lines", lines)
	}
}

func TestMarkdownPlainFallback(t *testing.T) {
	var m *Markdown
	if got := ansi.Strip(m.Render("  hello  ", 40)); !strings.Contains(got, "hello") {
		t.Errorf("nil Markdown should render plain text, got %q", got)
	}
	got := ansi.Strip(NewMarkdown(false, "default").Render("**bold**", 40))
	if !strings.Contains(got, "**bold**") {
		t.Errorf("disabled Markdown should not interpret markup, got %q", got)
	}
}

func TestMarkdownRender(t *testing.T) {
	m := NewMarkdown(true, "default")
	got := ansi.Strip(m.Render("**bold** text", 40))
	if !strings.Contains(got, "bold") || strings.Contains(got, "**") {
		t.Errorf("unexpected markdown output %q", got)
	}
	if len(m.renderers) != 1 {
		t.Errorf("expected one cached renderer, got %d", len(m.renderers))
	}
	m.Render("again", 40)
	if len(m.renderers) != 1 {
		t.Error("renderers should be cached per width")
	}
}

func TestMarkdownStyleFollowsTheme(t *testing.T) {
	t.Cleanup(func() { styles.Apply(styles.DefaultPalette()) })

	styles.Apply(styles.NordPalette())
	nord := NewMarkdown(true, "nord").style
	if nord.Heading.Color == nil || *nord.Heading.Color != string(styles.NordPalette().Primary) {
		t.Errorf("nord heading color = %v", nord.Heading.Color)
	}
	if nord.Link.Color == nil || *nord.Link.Color != string(styles.NordPalette().Secondary) {
		t.Errorf("nord link color = %v", nord.Link.Color)
	}

	styles.Apply(styles.DraculaPalette())
	dracula := NewMarkdown(true, "dracula").style
	if *dracula.Heading.Color != string(styles.DraculaPalette().Primary) {
		t.Errorf("dracula heading color = %v", *dracula.Heading.Color)
	}
	if dracula.CodeBlock.Chroma != glamourstyles.DraculaStyleConfig.CodeBlock.Chroma {
		t.Error("dracula should use the dracula base style")
	}

	got := ansi.Strip(NewMarkdown(true, "dracula").Render("# Title\n\nbody", 40))
	if !strings.Contains(got, "Title") || !strings.Contains(got, "body") {
		t.Errorf("unexpected markdown output %q", got)
	}
}

func TestSidebarCategoryUsesDisplayWidth(t *testing.T) {
	wide := strings.Repeat("漢字", 7)
	state := SidebarState{Scenarios: []api.ScenarioSummary{
		{ID: "a", Title: "Cache", Category: wide},
		{ID: "b", Title: "Queue", Category: "Messaging"},
	}}
	out := RenderSidebar(state, 40, 20)
	if strings.Contains(ansi.Strip(out), wide) {
		t.Errorf("a category wider than the menu line should be omitted:\n%s", ansi.Strip(out))
	}
	if !strings.Contains(ansi.Strip(out), "(Messaging)") {
		t.Errorf("a narrow category should still render:\n%s", ansi.Strip(out))
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %q is %d cells wide, want <= 40", ansi.Strip(line), w)
		}
	}
}
