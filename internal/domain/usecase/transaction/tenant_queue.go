package transaction

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
)

// DefaultQueueSize is the buffer of each tenant queue
const DefaultQueueSize = 100

// ledgerJob is one posting or cancellation unit executed by a tenant worker
type ledgerJob func(ctx context.Context) (*entity.Transaction, error)

// Job states. A pending job is either claimed by the worker or abandoned by its caller, never both.
const (
	jobPending int32 = iota
	jobClaimed
	jobAbandoned
)

// queuedJob represents a job waiting in a tenant queue
type queuedJob struct {
	ctx        context.Context
	tenantID   string
	job        ledgerJob
	resultChan chan *jobResult
	state      atomic.Int32
}

// jobResult represents the outcome of a processed job
type jobResult struct {
	transaction *entity.Transaction
	err         error
}

// TenantQueue provides sequential processing of ledger writes per tenant
type TenantQueue struct {
	logger    coreport.Logger
	queueSize int

	// Tenant-based queues for strict ordering
	tenantQueues   sync.Map // map[string]chan *queuedJob
	queueWaitGroup sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewTenantQueue creates a new tenant queue
func NewTenantQueue(logger coreport.Logger, queueSize int) *TenantQueue {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &TenantQueue{
		logger:    logger,
		queueSize: queueSize,
	}
}

// Submit adds a job to the tenant's queue and waits for its result
func (q *TenantQueue) Submit(ctx context.Context, tenantID string, job ledgerJob) (*entity.Transaction, error) {
	item := &queuedJob{
		ctx:        ctx,
		tenantID:   tenantID,
		job:        job,
		resultChan: make(chan *jobResult, 1),
	}
	if err := q.enqueue(ctx, tenantID, item); err != nil {
		return nil, err
	}

	select {
	case result := <-item.resultChan:
		return result.transaction, result.err
	case <-ctx.Done():
	}

	if item.state.CompareAndSwap(jobPending, jobAbandoned) {
		q.logger.Warn("Ledger job abandoned before it started", map[string]any{
			"tenant_id": tenantID,
			"error":     ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	// The worker already claimed the job; its outcome is what the store holds
	result := <-item.resultChan
	return result.transaction, result.err
}

func (q *TenantQueue) enqueue(ctx context.Context, tenantID string, item *queuedJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return errs.ErrInternalServer
	}

	// Get or create queue for this tenant
	queueIface, loaded := q.tenantQueues.LoadOrStore(tenantID, make(chan *queuedJob, q.queueSize))
	queue, ok := queueIface.(chan *queuedJob)
	if !ok {
		q.logger.Error("Failed to type assert queue channel", nil)
		return errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		q.logger.Info("Starting ledger queue worker for tenant", map[string]any{
			"tenant_id": tenantID,
		})
		q.queueWaitGroup.Add(1)
		go q.processTenantJobs(tenantID, queue)
	}

	select {
	case queue <- item:
		return nil
	case <-ctx.Done():
		q.logger.Warn("Context canceled while enqueueing ledger job", map[string]any{
			"tenant_id": tenantID,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// processTenantJobs handles the worker goroutine for a tenant's queue
func (q *TenantQueue) processTenantJobs(tenantID string, queue chan *queuedJob) {
	defer q.queueWaitGroup.Done()

	for item := range queue {
		if !item.state.CompareAndSwap(jobPending, jobClaimed) {
			continue
		}
		if err := item.ctx.Err(); err != nil {
			item.resultChan <- &jobResult{err: err}
			continue
		}

		txn, err := item.job(item.ctx)
		item.resultChan <- &jobResult{transaction: txn, err: err}
	}

	q.logger.Info("Ledger queue worker stopped", map[string]any{
		"tenant_id": tenantID,
	})
}

// Shutdown stops accepting jobs, drains every queue and waits for the workers
func (q *TenantQueue) Shutdown() {
	q.logger.Info("Shutting down ledger queues", nil)

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.tenantQueues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *queuedJob); ok {
			close(queue)
		}
		return true
	})
	q.mu.Unlock()

	q.queueWaitGroup.Wait()
	q.logger.Info("Ledger queues shut down successfully", nil)
}
