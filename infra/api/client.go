package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a thin HTTP wrapper for the emoterm server API.
// It handles base URL construction and form content-type injection.
//
// Unlike a typical API client, Do does not treat non-2xx statuses as
// errors: the server renders failures as plain text bodies and the
// caller displays whatever comes back. Only transport-level failures
// (connection refused, DNS, a body that cannot be read) are errors.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a server API client. A timeout of 0 means no
// timeout: a request that never reaches a terminal state stays
// in flight indefinitely.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// PostForm performs a form-encoded POST and returns the body verbatim,
// whatever the response status was.
func (c *Client) PostForm(ctx context.Context, path string, body io.Reader) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return data, nil
}
