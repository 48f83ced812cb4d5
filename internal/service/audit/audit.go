// Package audit compares locally stored sale hashes against the on-chain
// record and flags discrepancies for follow-up. Checks never mutate state;
// flagging is an explicit, separate action.
package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/equipledger/salesledger-backend/internal/errs"
	"github.com/equipledger/salesledger-backend/internal/hashing"
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

// Unaudited lists transactions no auditor has claimed yet.
func (s *Service) Unaudited(ctx context.Context) ([]model.Transaction, error) {
	return s.store.ListUnaudited(ctx)
}

// CheckIntegrity compares the hash stored locally against the hash the
// contract holds for the same transaction. The comparison is read-only and
// repeatable; an RPC failure yields a verdict rather than an error so the
// auditor sees the outage instead of a blank row.
func (s *Service) CheckIntegrity(ctx context.Context, transactionID string) (*Verdict, error) {
	transaction, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return &Verdict{Reason: ReasonNotFoundLocal}, nil
		}
		return nil, fmt.Errorf("load transaction: %w", err)
	}

	sale, err := s.ledger.GetSale(ctx, transactionID)
	if err != nil {
		s.logger.Warn("integrity check could not reach the contract",
			zap.String("transaction_id", transactionID),
			zap.Error(err))
		return &Verdict{Reason: ReasonRPCError}, nil
	}
	if !sale.Exists() {
		return &Verdict{Reason: ReasonNotFoundChain}, nil
	}

	verdict := &Verdict{
		IsVerified: sale.IsVerified,
		IsPaid:     sale.IsPaid,
		Chain:      sale,
	}
	if hashing.Compare(transaction.Hash, sale.StoredHash) {
		verdict.Match = true
		verdict.Reason = ReasonMatch
		return verdict, nil
	}

	verdict.Reason = ReasonMismatch
	s.logger.Warn("integrity mismatch detected",
		zap.String("transaction_id", transactionID),
		zap.String("local_hash", transaction.Hash),
		zap.String("chain_hash", sale.StoredHash),
		zap.Error(errs.ErrIntegrityMismatch))
	return verdict, nil
}

// FlagSuspicious marks a transaction for investigation. The flag is sticky;
// flagging an already flagged transaction succeeds without effect.
func (s *Service) FlagSuspicious(ctx context.Context, transactionID string) error {
	if err := s.store.SetSuspicious(ctx, transactionID); err != nil {
		return fmt.Errorf("flag transaction %s: %w", transactionID, err)
	}
	s.logger.Info("transaction flagged as suspicious", zap.String("transaction_id", transactionID))
	return nil
}
