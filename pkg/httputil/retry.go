package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a failure as transient. [Policy.Do] only repeats calls
// whose error wraps one of these.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Policy describes how often and how fast to retry.
type Policy struct {
	// Attempts is the total number of calls, including the first.
	Attempts int
	// Delay is the wait before the second call; it doubles after each failure.
	Delay time.Duration
	// MaxDelay caps the wait between calls. Zero means no cap.
	MaxDelay time.Duration
}

// DefaultPolicy is 3 attempts starting at one second.
var DefaultPolicy = Policy{Attempts: 3, Delay: time.Second, MaxDelay: 10 * time.Second}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// attempts run out. It returns the last error, or ctx.Err() when the context
// ends while waiting.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return lastErr
}

// IsRetryable reports whether err wraps a [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
