package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/api/apitest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, srv *apitest.Server) *api.Client {
	t.Helper()
	c, err := api.New(srv.URL())
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "http", baseURL: "http://localhost:8080/api"},
		{name: "trailing slash", baseURL: "https://example.com/api/"},
		{name: "relative", baseURL: "/api", wantErr: true},
		{name: "bad scheme", baseURL: "ftp://example.com/api", wantErr: true},
		{name: "empty", baseURL: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := api.New(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.False(t, strings.HasSuffix(c.BaseURL(), "/"))
		})
	}
}

func TestListScenarios(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede(), apitest.SimpleCRUD())
	c := newClient(t, srv)

	got, err := c.ListScenarios(context.Background())
	require.NoError(t, err)

	want := []api.ScenarioSummary{
		{ID: "a", Title: "Cache Stampede", Category: "Caching"},
		{ID: "b", Title: "Simple CRUD"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListScenarios() mismatch (-want +got):\n%s", diff)
	}
}

func TestListScenariosEmpty(t *testing.T) {
	srv := apitest.New(t)
	c := newClient(t, srv)

	got, err := c.ListScenarios(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetScenario(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede())
	c := newClient(t, srv)

	got, err := c.GetScenario(context.Background(), "a")
	require.NoError(t, err)
	if diff := cmp.Diff(apitest.CacheStampede(), *got); diff != "" {
		t.Errorf("GetScenario() mismatch (-want +got):\n%s", diff)
	}

	action, ok := got.Action("burst")
	assert.True(t, ok)
	assert.Equal(t, "Send Burst", action.Name)
	_, ok = got.Action("missing")
	assert.False(t, ok)
}

func TestGetScenarioNotFound(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede())
	c := newClient(t, srv)

	_, err := c.GetScenario(context.Background(), "zzz")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Scenario not found", se.Message)
	assert.Equal(t, http.MethodGet, se.Method)
	assert.Equal(t, "/scenarios/zzz", se.Path)
}

func TestGetState(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede())
	srv.SetState("a", api.Snapshot{
		"db_queries": 3,
		"cache":      map[string]any{"user:1": "alice"},
	})
	c := newClient(t, srv)

	got, err := c.GetState(context.Background(), "a")
	require.NoError(t, err)

	want := api.Snapshot{
		"db_queries": float64(3),
		"cache":      map[string]any{"user:1": "alice"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetState() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetStateServerError(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede())
	srv.Fail(apitest.EndpointState, 1)
	c := newClient(t, srv)

	_, err := c.GetState(context.Background(), "a")
	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Contains(t, se.Error(), "injected failure")

	// Only one failure was injected.
	_, err = c.GetState(context.Background(), "a")
	assert.NoError(t, err)
}

func TestTriggerAction(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede())
	c := newClient(t, srv)

	res, err := c.TriggerAction(context.Background(), "a", "expire")
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, []string{"a/expire"}, srv.Actions())
	assert.Equal(t, 1, srv.Hits(http.MethodPost, "/api/scenarios/a/actions/expire"))
}

func TestTriggerActionIgnoresUndecodableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok, not json"))
	}))
	defer ts.Close()

	c, err := api.New(ts.URL + "/api")
	require.NoError(t, err)

	res, err := c.TriggerAction(context.Background(), "a", "expire")
	require.NoError(t, err)
	assert.Equal(t, api.ActionResult{}, res)
}

func TestEmptyIdentifiers(t *testing.T) {
	c, err := api.New("http://127.0.0.1:1/api")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.GetScenario(ctx, " ")
	assert.ErrorIs(t, err, api.ErrEmptyID)
	_, err = c.GetState(ctx, "")
	assert.ErrorIs(t, err, api.ErrEmptyID)
	_, err = c.TriggerAction(ctx, "a", "")
	assert.ErrorIs(t, err, api.ErrEmptyID)
}

func TestPathEscaping(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c, err := api.New(ts.URL + "/api")
	require.NoError(t, err)

	_, err = c.GetState(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/api/scenarios/a%2Fb%20c/state", gotPath)
}

func TestRequestHeaders(t *testing.T) {
	var ids []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get(api.RequestIDHeader))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := api.New(ts.URL)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = c.ListScenarios(context.Background())
		require.NoError(t, err)
	}
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer ts.Close()

	c, err := api.New(ts.URL)
	require.NoError(t, err)

	_, err = c.GetScenario(context.Background(), "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestContextCancellation(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede())
	srv.Delay(apitest.EndpointState, time.Second)
	c := newClient(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetState(ctx, "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeout(t *testing.T) {
	srv := apitest.New(t, apitest.CacheStampede())
	srv.Delay(apitest.EndpointState, 500*time.Millisecond)

	c, err := api.New(srv.URL(), api.WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.GetState(context.Background(), "a")
	assert.Error(t, err)
}
