// Package ghl provides a client for the GoHighLevel MCP scheduling server.
// The server speaks a minimal tool-invocation protocol: a single HTTP
// endpoint accepts a named operation plus an argument payload.
package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jewelryboxai/assistant/internal/observability/metrics"
	"github.com/jewelryboxai/assistant/pkg/logging"
)

const (
	defaultTimeout = 30 * time.Second

	callToolPath = "/mcp/call_tool"
)

// Client invokes named remote tools against the GHL MCP server over HTTP.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	calendars  CalendarMapping
	logger     *logging.Logger
	metrics    *metrics.AssistantMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-call HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithMetrics records tool-call latency. Nil-safe; skipped when unset.
func WithMetrics(m *metrics.AssistantMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a GHL MCP client for the given server base URL.
func NewClient(baseURL string, calendars CalendarMapping, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		calendars: calendars,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calendars returns the configured calendar mapping.
func (c *Client) Calendars() CalendarMapping {
	return c.calendars
}

// callToolRequest is the tool-invocation wire format.
type callToolRequest struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

// CallTool invokes a named remote tool and returns the parsed response body
// verbatim. Unknown tool names fail immediately without any network call.
// Transport failures, non-2xx statuses, and malformed bodies are all
// normalized into a descriptive error; nothing escapes this boundary.
func (c *Client) CallTool(ctx context.Context, toolName string, arguments map[string]any) (map[string]any, error) {
	if _, ok := allowedTools[toolName]; !ok {
		return nil, fmt.Errorf("ghl: unsupported tool %q", toolName)
	}
	if arguments == nil {
		arguments = map[string]any{}
	}

	body, err := json.Marshal(callToolRequest{ToolName: toolName, Arguments: arguments})
	if err != nil {
		return nil, fmt.Errorf("ghl: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+callToolPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ghl: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveToolCall(toolName, time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("ghl: mcp server communication failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ghl: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		return nil, fmt.Errorf("ghl: status %d: %s", resp.StatusCode, msg)
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("ghl: unmarshal response: %w", err)
	}
	return result, nil
}

// CreateContactAndSchedule creates a contact with notes and books an
// appointment in one remote call. An unrecognized calendar id is replaced by
// the default calendar rather than failing the request.
func (c *Client) CreateContactAndSchedule(ctx context.Context, name, email, phone, notes, calendarID, startTime string) (map[string]any, error) {
	if !c.calendars.Contains(calendarID) {
		c.logger.Warn("ghl: unknown calendar id, substituting default",
			"calendar_id", calendarID,
			"default_id", c.calendars.Demo,
		)
		calendarID = c.calendars.Demo
	}

	result, err := c.CallTool(ctx, ToolCreateContactAndSchedule, map[string]any{
		"name":        name,
		"email":       email,
		"phone":       phone,
		"notes":       notes,
		"calendar_id": calendarID,
		"start_time":  startTime,
	})
	if err != nil {
		return nil, err
	}
	c.logger.Info("ghl: contact created and appointment scheduled", "name", name, "calendar_id", calendarID)
	return result, nil
}
