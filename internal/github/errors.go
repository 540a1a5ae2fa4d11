package github

import "fmt"

// NotFoundError reports that the remote does not know the user.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Username)
}

// RateLimitError reports that the unauthenticated request quota ran out.
type RateLimitError struct {
	Status int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited by the API (HTTP %d)", e.Status)
}

// HTTPError reports any other non-2xx response.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Status)
}

// NetworkError reports that the request never produced a response.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("could not reach the API: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// ParseError reports a response body that is not a valid event array.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid response body: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
