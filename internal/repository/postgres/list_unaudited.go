package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// ListUnaudited returns all transactions with no assigned auditor, oldest
// first. Used to build an auditor's work queue.
func (r *Repository) ListUnaudited(ctx context.Context) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_unaudited", err, start)
	}()

	const query = `
SELECT transaction_id, agent_id, auditor_id, total_amt, total_qty, hash, status, suspicious, created_at
FROM transactions
WHERE auditor_id IS NULL
ORDER BY created_at`

	var transactions []model.Transaction
	if err = r.db.SelectContext(ctx, &transactions, query); err != nil {
		err = fmt.Errorf("query unaudited transactions: %w", err)
		return nil, err
	}

	if err = r.attachDetails(ctx, transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
