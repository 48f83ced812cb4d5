// Package sales assembles sale submissions into hashed, persisted
// transactions ready for on-chain commitment.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/errs"
	"github.com/equipledger/salesledger-backend/internal/hashing"
	"github.com/equipledger/salesledger-backend/internal/model"
	"github.com/equipledger/salesledger-backend/pkg/safe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles sale submissions and agent-facing reads.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewService builds a sales Service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.Named("sales"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// CreateSale validates the submission, copies current item prices into the
// details, computes totals and the canonical hash, and persists everything
// atomically with status unverified. The returned payload and hash are
// relayed by the front end to the ledger contract. Any unknown item rejects
// the whole submission; no partial transaction is created.
func (s *Service) CreateSale(ctx context.Context, agentID string, items []model.SaleItemInput) (*model.SaleResult, error) {
	if agentID == "" {
		return nil, fmt.Errorf("%w: agent id is required", errs.ErrValidation)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", errs.ErrValidation)
	}

	itemIDs := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, input := range items {
		if input.Qty <= 0 {
			return nil, fmt.Errorf("%w: quantity %d for item %s", errs.ErrValidation, input.Qty, input.ItemID)
		}
		if _, ok := seen[input.ItemID]; ok {
			return nil, fmt.Errorf("%w: duplicate item %s", errs.ErrValidation, input.ItemID)
		}
		seen[input.ItemID] = struct{}{}
		itemIDs = append(itemIDs, input.ItemID)
	}

	catalog, err := s.store.ItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("look up items: %w", err)
	}

	var totalAmt, totalQty int64
	details := make([]model.TransactionDetail, 0, len(items))
	for _, input := range items {
		item, ok := catalog[input.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrItemNotFound, input.ItemID)
		}

		lineTotal, err := safe.MulInt64(input.Qty, item.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrValidation, err)
		}
		if totalAmt, err = safe.AddInt64(totalAmt, lineTotal); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrValidation, err)
		}
		if totalQty, err = safe.AddInt64(totalQty, input.Qty); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrValidation, err)
		}

		details = append(details, model.TransactionDetail{
			ItemID:      input.ItemID,
			Qty:         input.Qty,
			PriceAtTime: item.Price,
		})
	}

	createdAt := s.now().UTC()
	payload := model.SalePayload{
		TransactionID: s.newID(),
		TotalAmt:      totalAmt,
		TotalQty:      totalQty,
		Timestamp:     createdAt.UnixMilli(),
	}

	hash, err := hashing.SaleHash(payload)
	if err != nil {
		return nil, err
	}

	for i := range details {
		details[i].TransactionID = payload.TransactionID
	}
	transaction := model.Transaction{
		TransactionID: payload.TransactionID,
		AgentID:       agentID,
		TotalAmt:      totalAmt,
		TotalQty:      totalQty,
		Hash:          hash,
		Status:        model.StatusUnverified,
		CreatedAt:     createdAt,
		Details:       details,
	}

	if err := s.store.CreateTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("persist transaction: %w", err)
	}

	s.logger.Info("sale recorded off-chain",
		zap.String("transaction_id", payload.TransactionID),
		zap.String("agent_id", agentID),
		zap.Int64("total_amt", totalAmt),
		zap.Int64("total_qty", totalQty))

	return &model.SaleResult{Payload: payload, Hash: hash}, nil
}

// Transactions returns all transactions submitted by one agent.
func (s *Service) Transactions(ctx context.Context, agentID string) ([]model.Transaction, error) {
	return s.store.ListByAgent(ctx, agentID)
}

// Items returns the item catalog an agent can sell from.
func (s *Service) Items(ctx context.Context) ([]model.Item, error) {
	return s.store.ListItems(ctx)
}
