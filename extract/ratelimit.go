package extract

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/skim"
	"golang.org/x/time/rate"
)

var _ skim.Limiter = (*HostLimiter)(nil)

// HostLimiter spaces requests to the same host by a fixed delay using one
// token bucket per host. Requests to different hosts do not wait on each
// other.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewHostLimiter creates a HostLimiter that allows one request per delay
// per host. A zero or negative delay disables limiting.
func NewHostLimiter(delay time.Duration) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until a request to host is allowed.
// Returns an error if the context is canceled before the wait completes.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	if h.delay <= 0 {
		return ctx.Err()
	}

	h.mu.Lock()
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(h.delay), 1)
		h.limiters[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}
