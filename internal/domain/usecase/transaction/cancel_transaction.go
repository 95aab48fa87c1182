package transaction

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
)

var _ usecase.PostingUseCase = (*Service)(nil)

// Cancel deactivates a manual transaction and writes the compensating balance
// movement. The original amount and snapshots are left untouched.
func (s *Service) Cancel(ctx context.Context, req usecase.CancelRequest) (*entity.Transaction, error) {
	tenantID := strings.TrimSpace(req.TenantID)
	reason := strings.TrimSpace(req.Reason)
	cancelledBy := strings.TrimSpace(req.CancelledBy)
	if cancelledBy == "" {
		cancelledBy = systemActor
	}

	if tenantID == "" {
		return nil, errs.NewCancellationError(tenantID, req.TransactionID.String(), reason, errs.ErrInvalidTenant)
	}
	if reason == "" {
		return nil, errs.NewCancellationError(tenantID, req.TransactionID.String(), reason, errs.ErrCancellationReasonRequired)
	}
	if err := checkLength("cancelledBy", cancelledBy, maxActorLen); err != nil {
		return nil, errs.NewCancellationError(tenantID, req.TransactionID.String(), reason, err)
	}

	txn, err := s.queue.Submit(ctx, tenantID, func(jobCtx context.Context) (*entity.Transaction, error) {
		var cancelled *entity.Transaction
		err := retryOnConflict(jobCtx, s.retry, s.logger, tenantID, func() error {
			var unitErr error
			cancelled, unitErr = s.cancelInUnit(jobCtx, tenantID, req, reason, cancelledBy)
			return unitErr
		})
		return cancelled, err
	})
	if err != nil {
		cancelErr := errs.NewCancellationError(tenantID, req.TransactionID.String(), reason, err)
		if errs.IsNotFoundError(err) || errs.IsAlreadyCancelledError(err) || errs.IsValidationError(err) {
			s.logger.Warn("Transaction cancellation rejected", logFields(cancelErr))
		} else {
			s.logger.Error("Transaction cancellation failed", logFields(cancelErr))
		}
		return nil, cancelErr
	}

	s.invalidateSummary(ctx, tenantID)

	s.logger.Info("Transaction cancelled", map[string]any{
		"tenant_id":      tenantID,
		"transaction_id": txn.ID.String(),
		"reference":      txn.Reference(),
		"reason":         reason,
		"cancelled_by":   cancelledBy,
	})

	return txn, nil
}

func (s *Service) cancelInUnit(
	ctx context.Context,
	tenantID string,
	req usecase.CancelRequest,
	reason string,
	cancelledBy string,
) (*entity.Transaction, error) {
	var cancelled *entity.Transaction

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		balanceRepo := s.uow.GetBalanceRepository(txCtx)
		txnRepo := s.uow.GetTransactionRepository(txCtx)

		// Lock the balance row first so cancels and posts of a tenant serialize on it
		account, err := balanceRepo.GetForUpdate(txCtx, tenantID)
		if err != nil {
			return err
		}

		txn, err := txnRepo.GetByID(txCtx, tenantID, req.TransactionID)
		if err != nil {
			return err
		}
		if !txn.IsActive {
			return errs.ErrAlreadyCancelled
		}
		if txn.IsAutomatic() {
			return errs.ErrAutomaticNotCancellable
		}

		now := s.timeProvider.Now()
		before, after, err := account.ApplyDelta(txn.PaymentMethod, -txn.SignedAmount(), now)
		if err != nil {
			return err
		}
		if err := txn.Cancel(reason, cancelledBy, now); err != nil {
			return err
		}
		if err := txnRepo.MarkCancelled(txCtx, txn); err != nil {
			return err
		}

		adjustment := entity.NewReversalAdjustment(s.newID(), txn, before, after, reason, cancelledBy, now)
		if err := balanceRepo.CreateAdjustment(txCtx, adjustment); err != nil {
			return err
		}
		if err := balanceRepo.Save(txCtx, account); err != nil {
			return err
		}

		cancelled = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}
