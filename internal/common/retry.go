package common

import (
	"context"
	"fmt"
	"time"
)

// Retry runs fn up to maxAttempts times, doubling the backoff between
// attempts. It returns the first success, or the last error once the budget
// is spent. The backoff sleep is context-aware; a cancelled context aborts
// the remaining attempts.
func Retry(ctx context.Context, maxAttempts int, backoff time.Duration, fn func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}
