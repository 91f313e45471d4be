// Package api is the HTTP client for the scenario playground backend.
//
// The backend exposes four JSON endpoints under a common base path (usually
// /api): list scenarios, get one scenario, get its current state snapshot and
// trigger an action. The client is stateless and safe for concurrent use.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Iron-Ham/playground/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request id so client and backend logs can be
// correlated.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Client talks to the scenario backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero leaves the transport default
// (no timeout).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for the backend rooted at baseURL, e.g.
// "http://localhost:8080/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "api")
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListScenarios fetches the scenario menu.
func (c *Client) ListScenarios(ctx context.Context) ([]ScenarioSummary, error) {
	var out []ScenarioSummary
	if err := c.do(ctx, http.MethodGet, "/scenarios", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []ScenarioSummary{}
	}
	return out, nil
}

// GetScenario fetches the full detail of one scenario.
func (c *Client) GetScenario(ctx context.Context, id string) (*Scenario, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	var out Scenario
	if err := c.do(ctx, http.MethodGet, scenarioPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetState fetches the current state snapshot of one scenario.
func (c *Client) GetState(ctx context.Context, id string) (Snapshot, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	var out Snapshot
	if err := c.do(ctx, http.MethodGet, scenarioPath(id)+"/state", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = Snapshot{}
	}
	return out, nil
}

// TriggerAction fires an action against a scenario. The reply body is
// returned on a best-effort basis: callers that only care about the side
// effect can ignore it, and a body that is not an ActionResult is not an
// error.
func (c *Client) TriggerAction(ctx context.Context, id, actionID string) (ActionResult, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(actionID) == "" {
		return ActionResult{}, ErrEmptyID
	}
	var out ActionResult
	path := scenarioPath(id) + "/actions/" + url.PathEscape(actionID)
	if err := c.do(ctx, http.MethodPost, path, &out); err != nil {
		var de *decodeError
		if errors.As(err, &de) {
			c.logger.Debug("ignoring undecodable action reply", "path", path, "error", err.Error())
			return ActionResult{}, nil
		}
		return ActionResult{}, err
	}
	return out, nil
}

func scenarioPath(id string) string {
	return "/scenarios/" + url.PathEscape(id)
}

// decodeError marks a response whose body could not be decoded.
type decodeError struct {
	path string
	err  error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.path, e.err)
}

func (e *decodeError) Unwrap() error { return e.err }

// do issues one request and decodes a JSON reply into out.
func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log := c.logger.WithRequest(requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("request failed", "method", method, "path", path, "error", err.Error())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &decodeError{path: path, err: err}
	}
	return nil
}

// errorMessage extracts {"error": "..."} from a failed response, falling
// back to the trimmed raw body.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}
