package llmsdoc

import "context"

// Fetcher retrieves the body of a URL as text.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls cancellation of the whole fetch, retries included.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
