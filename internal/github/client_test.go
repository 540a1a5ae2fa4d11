package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const sampleFeed = `[
  {"type":"PushEvent","repo":{"name":"torvalds/linux"},"created_at":"2024-01-15T10:30:00Z","payload":{"size":3,"commits":[{"sha":"abc","message":"fix scheduler"}]}},
  {"type":"WatchEvent","repo":{"name":"golang/go"},"created_at":"2024-01-14T08:00:00Z","payload":{"action":"started"}}
]`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestFetchEvents(t *testing.T) {
	server, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/torvalds/events" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != "ghactivity" {
			t.Errorf("missing user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(sampleFeed))
	})

	client := NewClient(server.URL)
	events, err := client.FetchEvents(context.Background(), "torvalds")
	if err != nil {
		t.Fatalf("FetchEvents returned error: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventTypePush || events[0].Repo.Name != "torvalds/linux" {
		t.Errorf("first event unexpected: %+v", events[0])
	}
	if events[0].CommitCount() != 3 {
		t.Errorf("commit count = %d, expected 3", events[0].CommitCount())
	}
	expected := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !events[0].CreatedAt.Equal(expected) {
		t.Errorf("created_at = %v, expected %v", events[0].CreatedAt, expected)
	}
	if events[1].Type != EventTypeWatch {
		t.Errorf("second event type = %q, expected WatchEvent", events[1].Type)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
}

func TestFetchEventsNotFound(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	client := NewClient(server.URL)
	_, err := client.FetchEvents(context.Background(), "no-such-user")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Username != "no-such-user" {
		t.Fatalf("error username = %q", notFound.Username)
	}
}

func TestFetchEventsRateLimited(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusTooManyRequests} {
		server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limit exceeded", status)
		})

		client := NewClient(server.URL)
		_, err := client.FetchEvents(context.Background(), "torvalds")

		var rateLimited *RateLimitError
		if !errors.As(err, &rateLimited) {
			t.Fatalf("status %d: expected RateLimitError, got %v", status, err)
		}
		if rateLimited.Status != status {
			t.Fatalf("error status = %d, expected %d", rateLimited.Status, status)
		}
	}
}

func TestFetchEventsHTTPError(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})

	client := NewClient(server.URL)
	_, err := client.FetchEvents(context.Background(), "torvalds")

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Fatalf("error status = %d", httpErr.Status)
	}
}

func TestFetchEventsParseError(t *testing.T) {
	bodies := []string{
		"not json at all",
		`{"message":"an object, not an array"}`,
	}
	for _, body := range bodies {
		server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		client := NewClient(server.URL)
		_, err := client.FetchEvents(context.Background(), "torvalds")

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("body %q: expected ParseError, got %v", body, err)
		}
	}
}

func TestFetchEventsNetworkError(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	base := server.URL
	server.Close()

	client := NewClient(base)
	_, err := client.FetchEvents(context.Background(), "torvalds")

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestFetchEventsEmptyUsername(t *testing.T) {
	server, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	client := NewClient(server.URL)
	if _, err := client.FetchEvents(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty username")
	}
	if got := calls.Load(); got != 0 {
		t.Fatalf("expected no requests for empty username, got %d", got)
	}
}
