package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	defaultMaxAttempts = 5
	defaultBaseDelay   = 5 * time.Millisecond
)

// errInvalidMaxAttempts indicates a retry loop configured with no attempts.
var errInvalidMaxAttempts = errors.New("max attempts must be greater than 0")

// isConflict reports whether err is a transaction conflict worth retrying.
func isConflict(err error) bool {
	return errors.Is(err, badger.ErrConflict)
}

// retryWithBackoff retries operation while retryable accepts its error,
// doubling the delay after each attempt. Other errors are returned at once.
func retryWithBackoff(ctx context.Context, operation func() error, retryable func(error) bool, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return fmt.Errorf("%w: got %d", errInvalidMaxAttempts, maxAttempts)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}

		slog.Debug("operation failed, will retry", "attempt", attempt, "maxAttempts", maxAttempts, "err", lastErr)
		if attempt == maxAttempts {
			break
		}

		delay := baseDelay << (attempt - 1)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
