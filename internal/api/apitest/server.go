// Package apitest provides an in-memory scenario backend for tests.
//
// The fake mirrors the routes of the real playground backend under /api and
// lets tests inject failures and latency per endpoint.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/gin-gonic/gin"
)

// Endpoint names a backend route for failure injection.
type Endpoint string

const (
	EndpointList   Endpoint = "list"
	EndpointDetail Endpoint = "detail"
	EndpointState  Endpoint = "state"
	EndpointAction Endpoint = "action"
)

// Server is a fake backend. All methods are safe for concurrent use.
type Server struct {
	srv *httptest.Server

	mu        sync.Mutex
	scenarios []api.Scenario
	states    map[string]api.Snapshot
	failing   map[Endpoint]int
	delays    map[Endpoint]time.Duration
	hits      map[string]int
	actions   []string
}

// New starts a fake backend serving the given scenarios. It is shut down when
// the test ends.
func New(t testing.TB, scenarios ...api.Scenario) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		scenarios: scenarios,
		states:    make(map[string]api.Snapshot),
		failing:   make(map[Endpoint]int),
		delays:    make(map[Endpoint]time.Duration),
		hits:      make(map[string]int),
	}
	for _, sc := range scenarios {
		s.states[sc.ID] = api.Snapshot{}
	}

	router := gin.New()
	router.Use(s.countHits)
	group := router.Group("/api/scenarios")
	{
		group.GET("", s.listScenarios)
		group.GET("/:id", s.getScenario)
		group.GET("/:id/state", s.getState)
		group.POST("/:id/actions/:action_id", s.executeAction)
	}

	s.srv = httptest.NewServer(router)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the API base URL, including the /api prefix.
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

// SetState replaces the snapshot served for a scenario.
func (s *Server) SetState(id string, snap api.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[id] = snap
}

// Fail makes the next n requests to ep answer 500. A negative n fails every
// request until Fail(ep, 0) is called.
func (s *Server) Fail(ep Endpoint, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[ep] = n
}

// Delay makes every request to ep wait d before answering.
func (s *Server) Delay(ep Endpoint, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[ep] = d
}

// Hits returns how many requests were received for method and path, e.g.
// Hits("GET", "/api/scenarios/a/state").
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method+" "+path]
}

// Actions returns the "scenario/action" pairs executed so far, in order.
func (s *Server) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.actions...)
}

func (s *Server) countHits(c *gin.Context) {
	s.mu.Lock()
	s.hits[c.Request.Method+" "+c.Request.URL.Path]++
	s.mu.Unlock()
	c.Next()
}

// gate applies injected latency and failures. It returns false when the
// request has already been answered.
func (s *Server) gate(c *gin.Context, ep Endpoint) bool {
	s.mu.Lock()
	delay := s.delays[ep]
	fail := s.failing[ep]
	if fail > 0 {
		s.failing[ep] = fail - 1
	}
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-c.Request.Context().Done():
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return false
		}
	}
	if fail != 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "injected failure"})
		return false
	}
	return true
}

func (s *Server) find(id string) (api.Scenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sc := range s.scenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	return api.Scenario{}, false
}

func (s *Server) listScenarios(c *gin.Context) {
	if !s.gate(c, EndpointList) {
		return
	}
	s.mu.Lock()
	out := make([]api.ScenarioSummary, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		out = append(out, api.ScenarioSummary{ID: sc.ID, Title: sc.Title, Category: sc.Category})
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) getScenario(c *gin.Context) {
	if !s.gate(c, EndpointDetail) {
		return
	}
	sc, ok := s.find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (s *Server) getState(c *gin.Context) {
	if !s.gate(c, EndpointState) {
		return
	}
	id := c.Param("id")
	if _, ok := s.find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
		return
	}
	s.mu.Lock()
	snap := s.states[id]
	s.mu.Unlock()
	c.JSON(http.StatusOK, snap)
}

// executeAction records the action and exposes it as "last_action" in the
// scenario's state, so tests can observe the effect through a poll.
func (s *Server) executeAction(c *gin.Context) {
	if !s.gate(c, EndpointAction) {
		return
	}
	id, actionID := c.Param("id"), c.Param("action_id")
	sc, ok := s.find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
		return
	}
	if _, ok := sc.Action(actionID); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unknown action: " + actionID})
		return
	}

	s.mu.Lock()
	s.actions = append(s.actions, id+"/"+actionID)
	next := api.Snapshot{}
	for k, v := range s.states[id] {
		next[k] = v
	}
	next["last_action"] = actionID
	s.states[id] = next
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Action executed successfully.",
		"result":  actionID,
	})
}
