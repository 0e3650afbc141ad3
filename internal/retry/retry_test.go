package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

type busyError struct{}

func (busyError) Error() string { return "resource exhausted" }

type fatalError struct{}

func (fatalError) Error() string { return "invalid argument" }

func isBusy(err error) bool {
	var busy busyError
	return errors.As(err, &busy)
}

// recordingSleep captures requested delays without actually waiting.
func recordingSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestDoExhaustsExactlyMaxAttempts(t *testing.T) {
	var delays []time.Duration
	opts := Options{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
		MaxJitter:   time.Millisecond,
		Retryable:   isBusy,
		Sleep:       recordingSleep(&delays),
	}

	calls := 0
	_, err := Do(context.Background(), opts, func(context.Context) (string, error) {
		calls++
		return "", busyError{}
	})

	if calls != 5 {
		t.Errorf("expected exactly 5 invocations, got %d", calls)
	}
	if !IsExhausted(err) {
		t.Fatalf("expected ExhaustedError, got %v", err)
	}
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("errors.As failed on %v", err)
	}
	if exhausted.Attempts != 5 {
		t.Errorf("expected Attempts=5, got %d", exhausted.Attempts)
	}
	if !isBusy(exhausted.Last) {
		t.Errorf("expected last error to be the busy error, got %v", exhausted.Last)
	}
	// No sleep after the final attempt.
	if len(delays) != 4 {
		t.Errorf("expected 4 backoff waits, got %d", len(delays))
	}
}

func TestDoFatalShortCircuits(t *testing.T) {
	var delays []time.Duration
	opts := DefaultOptions(isBusy)
	opts.Sleep = recordingSleep(&delays)

	calls := 0
	_, err := Do(context.Background(), opts, func(context.Context) (int, error) {
		calls++
		return 0, fatalError{}
	})

	if calls != 1 {
		t.Errorf("expected exactly 1 invocation for a fatal error, got %d", calls)
	}
	var fatal fatalError
	if !errors.As(err, &fatal) {
		t.Errorf("expected the fatal error unchanged, got %v", err)
	}
	if IsExhausted(err) {
		t.Error("fatal error must not be reported as exhausted")
	}
	if len(delays) != 0 {
		t.Errorf("expected no backoff waits, got %d", len(delays))
	}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	var delays []time.Duration
	opts := DefaultOptions(isBusy)
	opts.Sleep = recordingSleep(&delays)

	calls := 0
	got, err := Do(context.Background(), opts, func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", busyError{}
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "ok" {
		t.Errorf("expected result \"ok\", got %q", got)
	}
	if calls != 3 {
		t.Errorf("expected 3 invocations, got %d", calls)
	}
}

func TestDoNilClassifierNeverRetries(t *testing.T) {
	opts := Options{MaxAttempts: 5}

	calls := 0
	_, err := Do(context.Background(), opts, func(context.Context) (int, error) {
		calls++
		return 0, busyError{}
	})

	if calls != 1 {
		t.Errorf("expected 1 invocation with nil classifier, got %d", calls)
	}
	if IsExhausted(err) {
		t.Error("nil classifier must not produce an exhausted error")
	}
}

func TestDoContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	opts := DefaultOptions(isBusy)
	opts.Sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	calls := 0
	_, err := Do(ctx, opts, func(context.Context) (int, error) {
		calls++
		return 0, busyError{}
	})

	if calls != 1 {
		t.Errorf("expected 1 invocation before cancellation, got %d", calls)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDelayWithinJitterBound(t *testing.T) {
	opts := Options{BaseDelay: 2 * time.Second, MaxJitter: time.Second}

	for attempt := 0; attempt < 5; attempt++ {
		floor := opts.BaseDelay << uint(attempt)
		ceiling := floor + opts.MaxJitter
		for i := 0; i < 200; i++ {
			d := Delay(opts, attempt)
			if d < floor || d > ceiling {
				t.Fatalf("attempt %d: delay %v outside [%v, %v]", attempt, d, floor, ceiling)
			}
		}
	}
}
