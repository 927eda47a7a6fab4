// Package ratelimit throttles outbound web service calls to a configurable
// request quota per time interval.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Limiter delays callers so that at most a fixed number of requests are
// issued per interval. A disabled limiter never delays. The zero value is
// not usable; construct with New or Disabled.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter allowing requests calls per interval. Both values
// must be positive; misconfiguration is reported here, at set-time, rather
// than on the first call.
func New(interval time.Duration, requests int) (*Limiter, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	if requests <= 0 {
		return nil, fmt.Errorf("requests must be positive, got %d", requests)
	}
	limit := rate.Limit(float64(requests) / interval.Seconds())
	return &Limiter{limiter: rate.NewLimiter(limit, requests)}, nil
}

// Disabled returns a limiter that never delays.
func Disabled() *Limiter {
	return &Limiter{}
}

// Wait blocks until the next request may be issued, or until ctx is done.
// The delay is cooperative: the call is postponed, never failed, except on
// context cancellation. Safe for concurrent use by callers sharing one
// client.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Enabled reports whether the limiter actually throttles.
func (l *Limiter) Enabled() bool {
	return l.limiter != nil
}
