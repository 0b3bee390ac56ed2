// Package remote talks to the remote document store over its JSON endpoints.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ganot/daylog/internal/domain/timelog"
)

const (
	configPath = "/api/config"
	logsPath   = "/api/logs"
	entryPath  = "/api/entry"

	maxResponseBytes = 8 << 20
)

// Client is the remote store adapter.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. A caller-supplied HTTP client is
// copied rather than modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the store at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

type configBody struct {
	Categories *[]string `json:"categories"`
}

// FetchConfig retrieves the remote configuration. A body without a
// categories array is malformed.
func (c *Client) FetchConfig(ctx context.Context) (timelog.Configuration, error) {
	body, err := c.do(ctx, http.MethodGet, configPath, nil)
	if err != nil {
		return timelog.Configuration{}, err
	}
	var parsed configBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return timelog.Configuration{}, fmt.Errorf("%w: config: %v", ErrMalformed, err)
	}
	if parsed.Categories == nil {
		return timelog.Configuration{}, fmt.Errorf("%w: config has no categories", ErrMalformed)
	}
	return timelog.Configuration{Categories: *parsed.Categories}, nil
}

// PushConfig replaces the remote category list.
func (c *Client) PushConfig(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	_, err := c.do(ctx, http.MethodPost, configPath, map[string]any{"categories": categories})
	return err
}

// FetchLogs retrieves the full remote log collection in server order.
func (c *Client) FetchLogs(ctx context.Context) ([]timelog.LogEntry, error) {
	body, err := c.do(ctx, http.MethodGet, logsPath, nil)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: logs are not an array", ErrMalformed)
	}
	var logs []timelog.LogEntry
	if err := json.Unmarshal(trimmed, &logs); err != nil {
		return nil, fmt.Errorf("%w: logs: %v", ErrMalformed, err)
	}
	for i := range logs {
		if logs[i].Entries == nil {
			logs[i].Entries = []timelog.Entry{}
		}
	}
	return logs, nil
}

// PushEntry upserts one day's log on the remote store.
func (c *Client) PushEntry(ctx context.Context, entry timelog.LogEntry) error {
	if entry.Entries == nil {
		entry.Entries = []timelog.Entry{}
	}
	_, err := c.do(ctx, http.MethodPost, entryPath, entry)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s body: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("remote request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %v", ErrUnavailable, path, err)
	}
	c.logger.Debug("remote request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s returned %d: %s", ErrUnavailable, method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
