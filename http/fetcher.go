// Package http provides a resilient HTTP implementation of llmsdoc.Fetcher.
// Requests are retried with exponential backoff and guarded by a circuit
// breaker shared across calls.
package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jeongil-dev/llmsdoc"
	"golang.org/x/time/rate"
)

// Fetcher defaults.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxAttempts  = 3
	DefaultRetryDelay   = 1 * time.Second
)

// Ensure Fetcher implements llmsdoc.Fetcher at compile time.
var _ llmsdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents with retries and a circuit breaker.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration
	limiter     *rate.Limiter
	breaker     *Breaker
	userAgent   string
	logger      *slog.Logger

	// sleep waits between attempts.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxAttempts sets how many attempts a single fetch cycle makes.
// Values below 1 are treated as 1.
func WithMaxAttempts(n int) Option {
	return func(f *Fetcher) {
		f.maxAttempts = max(n, 1)
	}
}

// WithRetryDelay sets the base backoff delay. Attempt i+1 waits
// d * 2^i after attempt i fails.
func WithRetryDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelay = d
	}
}

// WithRateLimit limits attempts to rps requests per second.
// Zero or negative disables rate limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *Breaker) Option {
	return func(f *Fetcher) {
		f.breaker = b
	}
}

// WithClient replaces the HTTP client. The client's own timeout is used
// as is.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithLogger sets the logger used for retry and breaker events.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a new resilient Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
		userAgent:   "llmsdoc/" + llmsdoc.Version,
		logger:      slog.New(slog.DiscardHandler),
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.breaker == nil {
		f.breaker = NewBreaker()
	}
	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Breaker returns the circuit breaker guarding this fetcher.
func (f *Fetcher) Breaker() *Breaker {
	return f.breaker
}

// Fetch retrieves the body at url as text.
//
// While the breaker is open it returns a *CircuitOpenError without making a
// request. Otherwise it makes up to the configured number of attempts and
// returns a *FetchError wrapping the last failure when none succeeds.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.breaker.Allow(); err != nil {
		return "", err
	}

	var lastErr error
	attempts := 0
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx); err != nil {
				lastErr = err
				break
			}
		}

		attempts++
		body, err := f.get(ctx, url)
		if err == nil {
			f.breaker.Success()
			return body, nil
		}
		lastErr = err

		f.logger.Warn("fetch attempt failed",
			"url", url,
			"attempt", attempts,
			"max_attempts", f.maxAttempts,
			"err", err,
		)

		if !retryable(err) || ctx.Err() != nil {
			break
		}

		// Don't wait after the last attempt
		if attempt >= f.maxAttempts-1 {
			break
		}

		delay := f.retryDelay * time.Duration(1<<attempt)
		f.logger.Debug("retrying fetch", "url", url, "delay", delay)
		if err := f.sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	if f.breaker.Failure() {
		f.logger.Error("circuit breaker opened",
			"url", url,
			"failures", f.breaker.Failures(),
		)
	}

	return "", &FetchError{URL: url, Attempts: attempts, Err: lastErr}
}

// get performs a single GET request.
func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
