package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/errs"
	"github.com/equipledger/salesledger-backend/internal/model"
	"go.uber.org/zap"
)

// Processor reconciles SaleRecorded events. For each event it looks up the
// locally stored hash and agent wallet, submits a verification to the
// contract unless the sale is already verified on-chain, and advances the
// local status to pending once the contract confirms.
//
// ProcessEvent is safe to call repeatedly for the same transaction: a sale
// already verified on-chain skips straight to the status update, and the
// status update is a no-op when the transaction is already pending or has
// since been settled.
type Processor struct {
	ledger  LedgerClient
	store   Store
	metrics Metrics
	logger  *zap.Logger
}

func NewProcessor(ledger LedgerClient, store Store, metrics Metrics, logger *zap.Logger) *Processor {
	return &Processor{
		ledger:  ledger,
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

func (p *Processor) ProcessEvent(ctx context.Context, event model.SaleEvent) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessEvent(err, started)
	}()

	logger := p.logger.With(
		zap.String("transaction_id", event.TransactionID),
		zap.Uint64("block", event.BlockNumber),
	)

	hash, wallet, err := p.store.HashAndWallet(ctx, event.TransactionID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// The contract recorded a sale this ledger never issued. Nothing
			// to verify; leave it for the audit trail.
			logger.Warn("sale event has no local transaction, skipping")
			return nil
		}
		return fmt.Errorf("load local hash: %w", err)
	}

	sale, err := p.ledger.GetSale(ctx, event.TransactionID)
	if err != nil {
		return fmt.Errorf("read sale from contract: %w", err)
	}
	if !sale.Exists() {
		logger.Warn("sale event without contract state, skipping")
		return nil
	}

	if !sale.IsVerified {
		err = p.ledger.SubmitVerification(ctx, event.TransactionID, hash, wallet)
		switch {
		case err == nil:
		case errs.IsRejection(err):
			// The contract refused the verification, typically a hash
			// mismatch. Retrying the same inputs cannot succeed, so record
			// it and move on; the auditor surfaces the discrepancy.
			logger.Warn("verification rejected by contract", zap.Error(err))
			return nil
		default:
			return fmt.Errorf("submit verification: %w", err)
		}

		if sale, err = p.ledger.GetSale(ctx, event.TransactionID); err != nil {
			return fmt.Errorf("re-read sale after verification: %w", err)
		}
		if !sale.IsVerified {
			logger.Warn("verification mined but sale still unverified, skipping status update")
			return nil
		}
	}

	if err = p.store.UpdateStatus(ctx, event.TransactionID, model.StatusPending); err != nil {
		if errors.Is(err, errs.ErrInvalidState) {
			// The transaction moved past pending between the original tick
			// and this replay (the payment service settled it). The event is
			// fully handled; advancing the watermark must not be blocked.
			logger.Info("replayed event for an already settled transaction, skipping")
			return nil
		}
		return fmt.Errorf("advance status to pending: %w", err)
	}

	logger.Info("sale verified", zap.String("hash", hash))
	return nil
}
