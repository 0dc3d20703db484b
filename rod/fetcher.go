// Package rod fetches pages with a headless Chrome browser for news sites
// that render their articles with JavaScript.
package rod

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/skim"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds one page load.
const DefaultTimeout = 10 * time.Second

// Ensure Fetcher implements skim.Fetcher at compile time.
var _ skim.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browsers     *browserManager
	userAgent    string
	timeout      time.Duration
	recycleAfter int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent overrides the browser's User-Agent on every page.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithTimeout bounds each page load.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter replaces the browser process after n pages.
// Defaults to DefaultRecycleAfter.
func WithRecycleAfter(n int) Option {
	return func(f *Fetcher) {
		f.recycleAfter = n
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns EFETCH if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(f)
	}

	bm, err := newBrowserManager(f.recycleAfter)
	if err != nil {
		return nil, err
	}
	f.browsers = bm
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", skim.WrapError(skim.EFETCH, err, "fetch of %s canceled", url)
	}

	browser, err := f.browsers.acquire()
	if err != nil {
		return "", err
	}
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", skim.WrapError(skim.EFETCH, err, "failed to open browser page")
	}
	defer page.Close()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", skim.WrapError(skim.EFETCH, err, "failed to set user agent")
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", navigationError(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", navigationError(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", skim.WrapError(skim.EFETCH, err, "failed to read page HTML for %s", url)
	}
	return html, nil
}

func navigationError(ctx context.Context, url string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return skim.WrapError(skim.EFETCH, err, "timed out fetching %s", url)
	}
	return skim.WrapError(skim.EFETCH, err, "failed to load %s", url)
}

// LauncherPID returns the process ID of the launched browser.
func (f *Fetcher) LauncherPID() int {
	return f.browsers.pid()
}

// Close shuts down the browser and its process.
// Close is safe to call more than once.
func (f *Fetcher) Close() error {
	return f.browsers.close()
}
