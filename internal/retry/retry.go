// Package retry wraps a fallible call in a bounded attempt budget with a
// linearly increasing delay between attempts. The policy is deliberately
// decoupled from persistence: resumability of the batch stages depends on
// the per-page status tag, never on in-memory retry state.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy bounds one retried call.
type Policy struct {
	// MaxAttempts is the total attempt budget, first try included.
	MaxAttempts int
	// BaseDelay is multiplied by the attempt number for each wait, so the
	// pauses grow 1x, 2x, 3x, ...
	BaseDelay time.Duration
}

// linear implements backoff.BackOff with the attempt-proportional delay.
type linear struct {
	base    time.Duration
	attempt int
}

func (l *linear) NextBackOff() time.Duration {
	l.attempt++
	return l.base * time.Duration(l.attempt)
}

func (l *linear) Reset() { l.attempt = 0 }

// Do runs op under the policy, returning the first success or the error of
// the final attempt. Context cancellation stops further attempts.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	return backoff.Retry(ctx,
		func() (T, error) { return op(ctx) },
		backoff.WithBackOff(&linear{base: p.BaseDelay}),
		backoff.WithMaxTries(uint(p.MaxAttempts)),
	)
}
