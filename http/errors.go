package http

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrCircuitOpen is matched by errors.Is for every *CircuitOpenError.
var ErrCircuitOpen = errors.New("circuit breaker open")

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ClientError reports whether the status is in the 4xx range.
func (e *StatusError) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// ServerError reports whether the status is in the 5xx range.
func (e *StatusError) ServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// Retryable reports whether another attempt may succeed.
// Client errors are final, except 429 Too Many Requests.
func (e *StatusError) Retryable() bool {
	return !e.ClientError() || e.StatusCode == 429
}

// CircuitOpenError is returned without any network attempt while the
// breaker is open.
type CircuitOpenError struct {
	Until time.Time
}

func (e *CircuitOpenError) Error() string {
	return fmt.Sprintf("circuit breaker open until %s: too many consecutive failures", e.Until.Format(time.RFC3339))
}

// Is makes errors.Is(err, ErrCircuitOpen) hold.
func (e *CircuitOpenError) Is(target error) bool {
	return target == ErrCircuitOpen
}

// FetchError reports a fetch cycle that ended without a successful response.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err was caused by a request timeout.
func IsTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// retryable reports whether err from a single attempt should be retried.
func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}
