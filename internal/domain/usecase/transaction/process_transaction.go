package transaction

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
)

// Post validates a draft and records it. Validation happens before any store access;
// the write itself runs in the tenant's queue and is retried on concurrency conflicts.
func (s *Service) Post(ctx context.Context, draft entity.TransactionDraft) (*entity.Transaction, error) {
	req, err := s.validator.Validate(draft)
	if err != nil {
		postingErr := newPostingError(draft, "validation failed", err)
		s.logger.Warn("Rejected transaction draft", logFields(postingErr))
		return nil, postingErr
	}

	// Replay a collaborator event that was already posted without taking any lock
	if existing, found, err := s.replay(ctx, req); err != nil {
		postingErr := newPostingError(draft, "idempotency check failed", err)
		s.logger.Warn("Rejected reused idempotency key", logFields(postingErr))
		return nil, postingErr
	} else if found {
		return existing, nil
	}

	txn, err := s.queue.Submit(ctx, req.TenantID, func(jobCtx context.Context) (*entity.Transaction, error) {
		var posted *entity.Transaction
		err := retryOnConflict(jobCtx, s.retry, s.logger, req.TenantID, func() error {
			var unitErr error
			posted, unitErr = s.postInUnit(jobCtx, req)
			return unitErr
		})
		return posted, err
	})
	if err != nil && errs.IsDuplicateTransactionError(err) && req.IdempotencyKey != "" {
		// another writer committed the same key between the check and the insert
		if existing, found, checkErr := s.replay(ctx, req); checkErr == nil && found {
			return existing, nil
		} else if checkErr != nil {
			err = checkErr
		}
	}
	if err != nil {
		postingErr := newPostingError(draft, "posting failed", err)
		s.logger.Error("Transaction posting failed", logFields(postingErr))
		return nil, postingErr
	}

	s.invalidateSummary(ctx, req.TenantID)

	s.logger.Info("Transaction posted", map[string]any{
		"tenant_id":          txn.TenantID,
		"transaction_id":     txn.ID.String(),
		"reference":          txn.Reference(),
		"type":               string(txn.Type),
		"category":           string(txn.Category),
		"payment_method":     string(txn.PaymentMethod),
		"source":             string(txn.Source),
		"amount":             entity.FormatCents(txn.Amount),
		"balance_after":      entity.FormatCents(txn.BalanceAfter),
		"transaction_number": txn.TransactionNumber,
	})

	return txn, nil
}

// postInUnit locks the balance row, applies the delta, allocates the number and
// writes the entry and the balances in one database transaction
func (s *Service) postInUnit(ctx context.Context, req entity.PostingRequest) (*entity.Transaction, error) {
	var posted *entity.Transaction

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		balanceRepo := s.uow.GetBalanceRepository(txCtx)
		txnRepo := s.uow.GetTransactionRepository(txCtx)

		account, err := balanceRepo.GetForUpdate(txCtx, req.TenantID)
		if err != nil {
			return err
		}

		existing, found, err := s.idempotencyHandler.CheckIdempotency(txCtx, txnRepo, req)
		if err != nil {
			return err
		}
		if found {
			posted = existing
			return nil
		}

		now := s.timeProvider.Now()
		before, after, err := account.ApplyDelta(req.PaymentMethod, req.SignedAmount(), now)
		if err != nil {
			return err
		}
		number := account.NextTransactionNumber()

		txn := entity.NewTransaction(s.newID(), req, number, before, after, now)
		if err := txnRepo.Create(txCtx, txn); err != nil {
			return err
		}
		if err := balanceRepo.Save(txCtx, account); err != nil {
			return err
		}
		if err := account.CheckInvariant(); err != nil {
			return err
		}

		posted = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return posted, nil
}

// replay returns the entry already posted under the request's idempotency key
func (s *Service) replay(ctx context.Context, req entity.PostingRequest) (*entity.Transaction, bool, error) {
	existing, found, err := s.idempotencyHandler.CheckIdempotency(ctx, s.uow.GetTransactionRepository(ctx), req)
	if err != nil || !found {
		return nil, false, err
	}
	s.logger.Info("Replaying already posted event", map[string]any{
		"tenant_id":       req.TenantID,
		"idempotency_key": req.IdempotencyKey,
		"transaction_id":  existing.ID.String(),
	})
	return existing, true, nil
}

func newPostingError(d entity.TransactionDraft, reason string, err error) error {
	return errs.NewPostingError(d.TenantID, d.Type, d.Category, d.PaymentMethod, d.Source, d.Amount, reason, err)
}

// logFields extracts structured fields from rich domain errors
func logFields(err error) map[string]any {
	var fielder interface{ LogFields() map[string]any }
	if errors.As(err, &fielder) {
		return fielder.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
