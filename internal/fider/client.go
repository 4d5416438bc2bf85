// Package fider is a thin client for the Fider REST API. Every method issues
// exactly one HTTP request: no retries, no caching, no pagination.
package fider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fider-contrib/fider-mcp/internal/config"
	"github.com/fider-contrib/fider-mcp/internal/httpheaders"
)

const userAgent = "Fider-MCP-Server/1.0.0"

// Client talks to a single Fider instance. It is immutable after New and safe
// for use from any number of handler invocations.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
}

// New builds a client from the resolved configuration. Configured extra
// headers override the built-in ones, matching case-insensitively.
func New(cfg *config.Config) *Client {
	headers := httpheaders.Set(nil, "User-Agent", userAgent)
	if cfg.APIKey != "" {
		headers = httpheaders.Set(headers, "Authorization", "Bearer "+cfg.APIKey)
	}
	headers = httpheaders.Merge(headers, cfg.Headers)

	return &Client{
		baseURL: cfg.BaseURL,
		headers: headers,
		http:    &http.Client{},
	}
}

// StatusError reports a Fider response with status >= 400. Body holds the
// decoded JSON payload when the response carried one, otherwise the raw text.
type StatusError struct {
	Status int
	Body   any
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %v", e.Status, e.Body)
}

// IsNotFound reports whether err is a StatusError with a 404 status.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// do performs one request and decodes the response body as JSON when
// possible, falling back to the raw text. An empty body decodes to nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var data any
	if len(bytes.TrimSpace(text)) > 0 {
		if jsonErr := json.Unmarshal(text, &data); jsonErr != nil {
			data = string(text)
		}
	}

	if resp.StatusCode >= 400 {
		return nil, &StatusError{Status: resp.StatusCode, Body: data}
	}
	return data, nil
}
