// Package retry executes fallible operations with exponential backoff.
// Only errors the caller classifies as retryable are retried; everything
// else is returned on first occurrence.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// DefaultMaxAttempts is the total number of invocations before giving up.
	DefaultMaxAttempts = 5
	// DefaultBaseDelay is the backoff base; attempt i waits base*2^i plus jitter.
	DefaultBaseDelay = 2 * time.Second
	// DefaultMaxJitter bounds the random component added to each delay.
	DefaultMaxJitter = 1 * time.Second
)

// Options configures a retry loop.
type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration

	// Retryable classifies errors. A nil classifier treats every error as
	// fatal, disabling retries.
	Retryable func(error) bool

	// Sleep waits between attempts. Overridable in tests; nil uses a
	// context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultOptions returns the standard retry configuration with the given
// error classifier.
func DefaultOptions(retryable func(error) bool) Options {
	return Options{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		MaxJitter:   DefaultMaxJitter,
		Retryable:   retryable,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = DefaultBaseDelay
	}
	if o.MaxJitter < 0 {
		o.MaxJitter = DefaultMaxJitter
	}
	if o.Sleep == nil {
		o.Sleep = sleepContext
	}
	return o
}

// ExhaustedError is the terminal failure after every attempt hit a
// retryable condition. Callers surface it as a "service busy, try again"
// state, distinct from all other failures.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("service busy after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// IsExhausted reports whether err is (or wraps) an ExhaustedError.
func IsExhausted(err error) bool {
	var exhausted *ExhaustedError
	return errors.As(err, &exhausted)
}

// Do invokes op until it succeeds, fails with a non-retryable error, or
// exhausts opts.MaxAttempts. Retries are strictly sequential; op must be
// safe to re-invoke. Context cancellation during a backoff wait aborts
// the loop with the context's error.
func Do[T any](ctx context.Context, opts Options, op func(context.Context) (T, error)) (T, error) {
	var zero T
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if opts.Retryable == nil || !opts.Retryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt+1 < opts.MaxAttempts {
			if err := opts.Sleep(ctx, Delay(opts, attempt)); err != nil {
				return zero, err
			}
		}
	}

	return zero, &ExhaustedError{Attempts: opts.MaxAttempts, Last: lastErr}
}

// Delay computes the backoff for a zero-based attempt index:
// BaseDelay*2^attempt plus uniform jitter in [0, MaxJitter). The jitter
// desynchronizes concurrent clients hitting the same rate limit.
func Delay(opts Options, attempt int) time.Duration {
	backoff := opts.BaseDelay << uint(attempt)
	if opts.MaxJitter > 0 {
		backoff += time.Duration(rand.Int63n(int64(opts.MaxJitter)))
	}
	return backoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
