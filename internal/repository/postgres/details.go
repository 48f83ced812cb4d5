package postgres

import (
	"context"
	"fmt"

	"github.com/equipledger/salesledger-backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// attachDetails loads detail rows for a batch of transactions in one query.
func (r *Repository) attachDetails(ctx context.Context, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	ids := make([]string, 0, len(transactions))
	index := make(map[string]int, len(transactions))
	for i, transaction := range transactions {
		ids = append(ids, transaction.TransactionID)
		index[transaction.TransactionID] = i
	}

	query, args, err := sqlx.In(`
SELECT transaction_id, item_id, qty, price_at_time
FROM transaction_details
WHERE transaction_id IN (?)
ORDER BY transaction_id, item_id`, ids)
	if err != nil {
		return fmt.Errorf("build details query: %w", err)
	}

	var details []model.TransactionDetail
	if err := r.db.SelectContext(ctx, &details, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("query details: %w", err)
	}

	for _, detail := range details {
		i, ok := index[detail.TransactionID]
		if !ok {
			continue
		}
		transactions[i].Details = append(transactions[i].Details, detail)
	}
	return nil
}
