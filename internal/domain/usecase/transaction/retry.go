package transaction

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/cenkalti/backoff/v4"
)

// RetryConfig controls how posting units are retried after a concurrency conflict
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	JitterFactor    float64
}

// DefaultRetryConfig returns the retry settings used when none are configured
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      5,
		InitialInterval: 20 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		JitterFactor:    0.3,
	}
}

func (c RetryConfig) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.InitialInterval
	b.MaxInterval = c.MaxInterval
	b.RandomizationFactor = c.JitterFactor
	b.MaxElapsedTime = 0

	retries := c.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)
}

// retryOnConflict runs op again while it fails with ErrConcurrencyConflict.
// Every other error is returned immediately.
func retryOnConflict(ctx context.Context, cfg RetryConfig, logger coreport.Logger, tenantID string, op func() error) error {
	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			err := op()
			if err == nil {
				return nil
			}
			if !errs.IsConcurrencyConflictError(err) {
				return backoff.Permanent(err)
			}
			return err
		},
		cfg.newBackOff(ctx),
		func(err error, wait time.Duration) {
			logger.Warn("Concurrency conflict, retrying ledger unit", map[string]any{
				"tenant_id": tenantID,
				"attempt":   attempt,
				"wait":      wait.String(),
				"error":     err.Error(),
			})
		},
	)
}
