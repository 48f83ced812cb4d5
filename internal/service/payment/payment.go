// Package payment settles verified sales. Settlement writes the paid flag to
// the contract first and advances the local status only afterwards, so the
// chain stays ahead of the local ledger and the oracle's repair pass can
// recover a crash between the two writes.
package payment

import (
	"context"
	"fmt"

	"github.com/equipledger/salesledger-backend/internal/errs"
	"github.com/equipledger/salesledger-backend/internal/model"
	"go.uber.org/zap"
)

type Service struct {
	store  Store
	ledger LedgerClient
	logger *zap.Logger
}

func NewService(store Store, ledger LedgerClient, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		ledger: ledger,
		logger: logger,
	}
}

// Pending lists verified transactions awaiting settlement.
func (s *Service) Pending(ctx context.Context) ([]model.Transaction, error) {
	return s.store.ListByStatus(ctx, model.StatusPending)
}

// Settle marks a pending transaction as paid, on-chain and locally. Only
// pending transactions are eligible; settling an unverified transaction is an
// invalid state transition and paying twice is rejected the same way.
func (s *Service) Settle(ctx context.Context, transactionID string) error {
	transaction, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("load transaction: %w", err)
	}
	if transaction.Status != model.StatusPending {
		return fmt.Errorf("%w: cannot settle transaction in status %s",
			errs.ErrInvalidState, transaction.Status)
	}

	sale, err := s.ledger.GetSale(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("read sale from contract: %w", err)
	}
	if !sale.Exists() {
		return fmt.Errorf("%w: transaction %s has no contract record", errs.ErrNotFound, transactionID)
	}

	// The contract may already hold the paid flag if a previous settlement
	// crashed after the on-chain write. Skip the duplicate submission and
	// finish the local half.
	if !sale.IsPaid {
		if err := s.ledger.SubmitPaymentUpdate(ctx, transactionID); err != nil {
			return fmt.Errorf("submit payment update: %w", err)
		}
	} else {
		s.logger.Info("sale already paid on-chain, completing local settlement",
			zap.String("transaction_id", transactionID))
	}

	if err := s.store.UpdateStatus(ctx, transactionID, model.StatusPaid); err != nil {
		return fmt.Errorf("advance status to paid: %w", err)
	}

	s.logger.Info("transaction settled", zap.String("transaction_id", transactionID))
	return nil
}
