// Package remote is the typed client for the tournament API the console
// consumes. All persistence, ranking and match-state transitions happen
// behind this API; the console only reads and pushes records through it,
// authenticating every request with the caller's bearer token.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

// Client talks to the tournament API. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// Collapses concurrent fetches of the same match (many viewers
	// refreshing one live match) into a single upstream GET.
	matchFetch singleflight.Group
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the API's uniform response wrapper. Successful responses put
// the record under "data"; failures put a human-readable "message".
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do performs one request against the API, attaching the bearer token when
// present, and decodes the data envelope into dst (which may be nil for
// acknowledgement-only calls).
func (c *Client) do(ctx context.Context, token, method, path string, body, dst interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tournament api unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatusError(resp.StatusCode, respBody)
	}

	if dst == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if env.Data == nil {
		// Some endpoints respond with the record at the top level.
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func mapStatusError(status int, body []byte) error {
	var env envelope
	_ = json.Unmarshal(body, &env)

	switch status {
	case http.StatusUnauthorized:
		return ErrAuthentication
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &APIError{StatusCode: status, Message: env.Message}
	}
}
