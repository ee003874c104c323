// Package automation is a thin client for the Cline extension's local
// automation server. Every call maps to one HTTP request; transport
// failures are logged and converted to sentinel values, so callers never
// handle errors, only inspect the returned JSON.
package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cline-tools/clinectl/pkg/logger"
)

// DefaultBaseURL is the address the automation server listens on when the
// extension runs with default settings.
const DefaultBaseURL = "http://localhost:3000"

const (
	defaultRequestTimeout = 30 * time.Second
	commandsPath          = "/commands"
	component             = "automation"
)

// Client issues commands to one automation server. The base URL is fixed
// at construction; Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for the server at baseURL. An empty baseURL selects
// DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// BaseURL returns the server address this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute sends {"command": command, "args": args} to the server and
// returns the parsed JSON response. A nil args is omitted from the body.
// On any transport failure (network error, non-2xx status, unparseable
// body) the failure is logged and a sentinel {"success": false, "error":
// <message>} is returned instead of an error.
func (c *Client) Execute(ctx context.Context, command string, args any) map[string]any {
	result, err := c.do(ctx, command, args)
	if err != nil {
		logger.ErrorCF(component, "command request failed", map[string]any{
			"command": command,
			"error":   err.Error(),
		})
		return map[string]any{
			"success": false,
			"error":   err.Error(),
		}
	}
	return result
}

func (c *Client) do(ctx context.Context, command string, args any) (map[string]any, error) {
	jsonData, err := json.Marshal(request{Command: command, Args: args})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result, nil
}

// ListCommands fetches the server's command catalog from <base>/commands.
// On any failure it logs and returns an empty slice. Note the asymmetry
// with Execute's sentinel object; the server contract has always exposed
// both shapes and downstream callers depend on each, so it stays.
func (c *Client) ListCommands(ctx context.Context) []map[string]any {
	commands, err := c.fetchCommands(ctx)
	if err != nil {
		logger.ErrorCF(component, "failed to fetch command list", map[string]any{
			"error": err.Error(),
		})
		return []map[string]any{}
	}
	return commands
}

func (c *Client) fetchCommands(ctx context.Context) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+commandsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var commands []map[string]any
	if err := json.Unmarshal(body, &commands); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return commands, nil
}
