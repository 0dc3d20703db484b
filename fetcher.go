package skim

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch issues one request for the URL (following redirects) and
	// returns the response body. Failures are reported as EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Limiter spaces out outbound requests to the same host.
type Limiter interface {
	// Wait blocks until the next request to host may be issued.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
