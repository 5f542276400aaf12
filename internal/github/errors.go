package github

import (
	"fmt"
	"time"
)

// NotFoundError means the requested user or repository does not exist.
// Fatal when it hits the profile fetch.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("github: %s not found", e.Resource)
}

// RateLimitError means the API refused the call because the rate limit is
// exhausted. Callers treat it as a facet-level degradation.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "github: rate limit exceeded"
	}
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// TimeoutError means one API call exceeded the configured timeout.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("github: %s timed out: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// HTTPError is any other non-2xx response; the caller decides whether to
// abort or degrade.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("github: unexpected status %d from %s", e.StatusCode, e.URL)
}
