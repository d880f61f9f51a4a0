// Package ratelimit provides a token-bucket limiter used to throttle
// fan-out calls against Microsoft Graph. A zero or negative rate disables
// the limiter entirely.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps a token-bucket rate limiter. The zero rate means disabled:
// Wait returns immediately and never blocks.
type Limiter struct {
	limiter *rate.Limiter
	rps     float64
}

// New creates a limiter allowing rps requests per second with a burst of 1.
// Rates <= 0 return a disabled limiter.
func New(rps float64) *Limiter {
	if rps <= 0 {
		return &Limiter{}
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		rps:     rps,
	}
}

// Enabled reports whether the limiter throttles at all.
func (l *Limiter) Enabled() bool {
	return l.limiter != nil
}

// RPS returns the configured requests-per-second rate, 0 when disabled.
func (l *Limiter) RPS() float64 {
	return l.rps
}

// Wait blocks until a token is available or the context is cancelled.
// A disabled limiter returns nil immediately.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
