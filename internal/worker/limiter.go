package worker

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles requests against a single API endpoint. The note
// service answers bursts with HTTP 429, so publishers wait here before
// every call.
type Limiter struct {
	rl *rate.Limiter
}

// NewLimiter creates a limiter allowing requestsPerSecond with the given
// burst size
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{rl: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until the next request is allowed or ctx is cancelled
func (l *Limiter) Wait(ctx context.Context) error {
	return l.rl.Wait(ctx)
}

// WaitWithDelay waits for clearance and then sleeps the additional delay,
// used to honor Retry-After responses.
func (l *Limiter) WaitWithDelay(ctx context.Context, delay time.Duration) error {
	if err := l.Wait(ctx); err != nil {
		return err
	}
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
