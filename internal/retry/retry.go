// Package retry re-runs an operation while a classifier says its error is
// transient.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

type Action int

const (
	Stop  Action = iota // permanent error, abort immediately
	Retry               // transient error, wait Backoff and try again
)

type Policy struct {
	MaxAttempts int
	Backoff     time.Duration // fixed wait between attempts
	Clock       clockwork.Clock
	OnRetry     func(attempt int, err error, backoff time.Duration)
}

type Classify func(err error) Action
type Operation[T any] func(ctx context.Context) (T, error)

// Do runs op until it succeeds, classify returns Stop, attempts run out or
// ctx is cancelled. Errors are returned unwrapped so callers can inspect them
// with errors.As.
func Do[T any](ctx context.Context, p Policy, classify Classify, op Operation[T]) (T, error) {
	var zero T
	if p.MaxAttempts < 1 {
		return zero, fmt.Errorf("retry: MaxAttempts must be >= 1, got %d", p.MaxAttempts)
	}
	clock := p.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	for attempt := 1; ; attempt++ {
		val, err := op(ctx)
		if err == nil {
			return val, nil
		}
		if attempt == p.MaxAttempts || classify(err) == Stop {
			return zero, err
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, p.Backoff)
		}

		select {
		case <-clock.After(p.Backoff):
		case <-ctx.Done():
			return zero, err
		}
	}
}
