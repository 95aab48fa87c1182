package transaction

import (
	"context"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{MaxRetries: maxRetries, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnConflict(t *testing.T) {
	t.Run("retries conflicts until success", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), fastRetry(3), newQuietLogger(t), "agency-1", func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: version 1 is stale", errs.ErrConcurrencyConflict)
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("surfaces the conflict once retries are exhausted", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), fastRetry(2), newQuietLogger(t), "agency-1", func() error {
			calls++
			return errs.ErrConcurrencyConflict
		})
		assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), fastRetry(5), newQuietLogger(t), "agency-1", func() error {
			calls++
			return errs.ErrTransactionNotFound
		})
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero retries runs once", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), fastRetry(0), newQuietLogger(t), "agency-1", func() error {
			calls++
			return errs.ErrConcurrencyConflict
		})
		assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
		assert.Equal(t, 1, calls)
	})
}
