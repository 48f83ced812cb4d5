package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// ListByAgent returns all transactions submitted by one agent, newest first.
func (r *Repository) ListByAgent(ctx context.Context, agentID string) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_by_agent", err, start)
	}()

	const query = `
SELECT transaction_id, agent_id, auditor_id, total_amt, total_qty, hash, status, suspicious, created_at
FROM transactions
WHERE agent_id = $1
ORDER BY created_at DESC`

	var transactions []model.Transaction
	if err = r.db.SelectContext(ctx, &transactions, query, agentID); err != nil {
		err = fmt.Errorf("query transactions by agent: %w", err)
		return nil, err
	}

	if err = r.attachDetails(ctx, transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
