package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// CreateTransaction persists a transaction and its details atomically. A
// failure on any detail rolls back the whole submission; no partial
// transaction is ever visible.
func (r *Repository) CreateTransaction(ctx context.Context, transaction model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_transaction", err, start)
	}()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertTransaction = `
INSERT INTO transactions (transaction_id, agent_id, total_amt, total_qty, hash, status, suspicious, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err = tx.ExecContext(ctx, insertTransaction,
		transaction.TransactionID,
		transaction.AgentID,
		transaction.TotalAmt,
		transaction.TotalQty,
		transaction.Hash,
		transaction.Status,
		transaction.Suspicious,
		transaction.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	const insertDetail = `
INSERT INTO transaction_details (transaction_id, item_id, qty, price_at_time)
VALUES ($1, $2, $3, $4)`

	for _, detail := range transaction.Details {
		if _, err = tx.ExecContext(ctx, insertDetail,
			transaction.TransactionID,
			detail.ItemID,
			detail.Qty,
			detail.PriceAtTime,
		); err != nil {
			return fmt.Errorf("insert transaction detail: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
