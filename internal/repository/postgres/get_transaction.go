package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/errs"
	"github.com/equipledger/salesledger-backend/internal/model"
)

// GetTransaction loads one transaction with its details. Returns
// errs.ErrNotFound for an unknown id.
func (r *Repository) GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_transaction", err, start)
	}()

	const query = `
SELECT transaction_id, agent_id, auditor_id, total_amt, total_qty, hash, status, suspicious, created_at
FROM transactions
WHERE transaction_id = $1`

	var transaction model.Transaction
	if err = r.db.GetContext(ctx, &transaction, query, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("transaction %s: %w", transactionID, errs.ErrNotFound)
			return nil, err
		}
		err = fmt.Errorf("query transaction: %w", err)
		return nil, err
	}

	const detailQuery = `
SELECT transaction_id, item_id, qty, price_at_time
FROM transaction_details
WHERE transaction_id = $1
ORDER BY item_id`

	if err = r.db.SelectContext(ctx, &transaction.Details, detailQuery, transactionID); err != nil {
		err = fmt.Errorf("query transaction details: %w", err)
		return nil, err
	}

	return &transaction, nil
}
