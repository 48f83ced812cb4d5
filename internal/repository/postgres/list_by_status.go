package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// ListByStatus returns all transactions in the given status, oldest first.
func (r *Repository) ListByStatus(ctx context.Context, status model.Status) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_by_status", err, start)
	}()

	const query = `
SELECT transaction_id, agent_id, auditor_id, total_amt, total_qty, hash, status, suspicious, created_at
FROM transactions
WHERE status = $1
ORDER BY created_at`

	var transactions []model.Transaction
	if err = r.db.SelectContext(ctx, &transactions, query, status); err != nil {
		err = fmt.Errorf("query transactions by status: %w", err)
		return nil, err
	}

	if err = r.attachDetails(ctx, transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
