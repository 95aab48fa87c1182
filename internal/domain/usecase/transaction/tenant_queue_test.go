package transaction

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantQueue_SerializesJobsOfOneTenant(t *testing.T) {
	q := NewTenantQueue(newQuietLogger(t), 0)
	defer q.Shutdown()

	var running, maxRunning int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := q.Submit(context.Background(), "agency-1", func(ctx context.Context) (*entity.Transaction, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&running, -1)
				return &entity.Transaction{}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

func TestTenantQueue_ReturnsJobResult(t *testing.T) {
	q := NewTenantQueue(newQuietLogger(t), 4)
	defer q.Shutdown()

	txn, err := q.Submit(context.Background(), "agency-1", func(ctx context.Context) (*entity.Transaction, error) {
		return &entity.Transaction{TransactionNumber: 7}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), txn.TransactionNumber)

	_, err = q.Submit(context.Background(), "agency-2", func(ctx context.Context) (*entity.Transaction, error) {
		return nil, errs.ErrTransactionNotFound
	})
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTenantQueue_SkipsCancelledJobs(t *testing.T) {
	q := NewTenantQueue(newQuietLogger(t), 4)
	defer q.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	_, err := q.Submit(ctx, "agency-1", func(ctx context.Context) (*entity.Transaction, error) {
		ran = true
		return nil, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestTenantQueue_ReportsOutcomeOfStartedJobAfterCancel(t *testing.T) {
	q := NewTenantQueue(newQuietLogger(t), 4)
	defer q.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	finish := make(chan struct{})

	type outcome struct {
		txn *entity.Transaction
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		txn, err := q.Submit(ctx, "agency-1", func(context.Context) (*entity.Transaction, error) {
			close(started)
			<-finish
			return &entity.Transaction{TransactionNumber: 9}, nil
		})
		done <- outcome{txn, err}
	}()

	<-started
	cancel()
	select {
	case <-done:
		t.Fatal("Submit returned before the started job finished")
	case <-time.After(20 * time.Millisecond):
	}
	close(finish)

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, int64(9), got.txn.TransactionNumber)
}

func TestTenantQueue_AbandonedJobNeverRuns(t *testing.T) {
	q := NewTenantQueue(newQuietLogger(t), 4)
	defer q.Shutdown()

	// occupy the tenant worker so the next job stays pending
	release := make(chan struct{})
	busy := make(chan struct{})
	go func() {
		_, _ = q.Submit(context.Background(), "agency-1", func(context.Context) (*entity.Transaction, error) {
			close(busy)
			<-release
			return nil, nil
		})
	}()
	<-busy

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	var ran atomic.Bool
	_, err := q.Submit(ctx, "agency-1", func(context.Context) (*entity.Transaction, error) {
		ran.Store(true)
		return nil, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	_, err = q.Submit(context.Background(), "agency-1", func(context.Context) (*entity.Transaction, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.False(t, ran.Load())
}

func TestTenantQueue_RejectsAfterShutdown(t *testing.T) {
	q := NewTenantQueue(newQuietLogger(t), 4)
	_, err := q.Submit(context.Background(), "agency-1", func(ctx context.Context) (*entity.Transaction, error) {
		return nil, nil
	})
	require.NoError(t, err)

	q.Shutdown()
	q.Shutdown()

	_, err = q.Submit(context.Background(), "agency-1", func(ctx context.Context) (*entity.Transaction, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}
