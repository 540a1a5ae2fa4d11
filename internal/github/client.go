package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.github.com"

const defaultTimeout = 15 * time.Second

const userAgent = "ghactivity"

// Client fetches public activity events. The zero value is not usable; use
// NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the given API base URL. An empty baseURL
// selects the public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// FetchEvents retrieves the user's recent public events, newest first. It
// issues exactly one request; the API returns at most one page. Failures
// are reported as one of the typed errors in this package.
func (c *Client) FetchEvents(ctx context.Context, username string) ([]Event, error) {
	if username == "" {
		return nil, errors.New("username is empty")
	}

	endpoint := fmt.Sprintf("%s/users/%s/events", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Username: username}
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}

	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, &ParseError{Cause: err}
	}

	return events, nil
}
