package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of skim.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ skim.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of skim.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
