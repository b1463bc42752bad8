// Package cms provides the persisted query client for the headless CMS
// GraphQL endpoint.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
)

// Client executes named persisted queries against a configured endpoint
// base. Each invocation performs exactly one outbound request; there is no
// caching, deduplication, or retry. Concurrent invocations are independent.
type Client struct {
	httpClient   *http.Client
	endpointBase string
	logger       *logging.ChanneledLogger
}

// NewClient creates a persisted query client. The endpoint base and HTTP
// client are injected so the executor carries no ambient configuration.
func NewClient(endpointBase string, httpClient *http.Client, logger *logging.ChanneledLogger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient:   httpClient,
		endpointBase: strings.TrimSuffix(endpointBase, "/"),
		logger:       logger,
	}
}

// envelope is the expected response shape of a persisted query endpoint.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// Execute invokes one persisted query by name with a flat string parameter
// set and returns the data payload of the response envelope. Transport
// failures, non-2xx statuses, server-reported query errors, and malformed
// envelopes all come back as error values; Execute never panics past this
// boundary.
func (c *Client) Execute(ctx context.Context, queryName string, params map[string]string) (json.RawMessage, error) {
	start := time.Now()

	if queryName == "" {
		return nil, fmt.Errorf("persisted query name cannot be empty")
	}

	queryURL := c.endpointBase + "/" + queryName
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for query %s: %w", queryName, err)
	}

	if len(params) > 0 {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, value)
		}
		req.URL.RawQuery = values.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.CMS().Error("Persisted query transport failure", "query", queryName, "error", err.Error())
		return nil, fmt.Errorf("query %s failed: %w", queryName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		limitedBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		bodyStr := strings.ReplaceAll(string(limitedBody), "\n", " ")
		c.logger.CMS().Error("Persisted query rejected", "query", queryName, "status", resp.Status, "body", bodyStr)
		return nil, fmt.Errorf("query %s failed: %s", queryName, resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("query %s returned a malformed envelope: %w", queryName, err)
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("query %s failed: %s", queryName, env.Errors[0].Message)
	}

	if env.Data == nil {
		return nil, fmt.Errorf("query %s returned an envelope without data", queryName)
	}

	c.logger.CMS().Debug("Persisted query completed", "query", queryName, "params", len(params), "duration", time.Since(start))

	return env.Data, nil
}

// Ping reports whether the persisted query endpoint is reachable. Any HTTP
// response counts as reachable; only transport-level failure does not.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointBase, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cms endpoint unreachable: %w", err)
	}
	_ = resp.Body.Close()

	return nil
}
