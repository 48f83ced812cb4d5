package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// UpsertItem inserts a catalog item or refreshes price/stock for an existing
// name. Used by the seeder.
func (r *Repository) UpsertItem(ctx context.Context, item model.Item) (string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_item", err, start)
	}()

	const query = `
INSERT INTO items (name, price, stock)
VALUES ($1, $2, $3)
ON CONFLICT (name)
DO UPDATE SET price = EXCLUDED.price, stock = EXCLUDED.stock
RETURNING item_id`

	var itemID string
	if err = r.db.GetContext(ctx, &itemID, query, item.Name, item.Price, item.Stock); err != nil {
		err = fmt.Errorf("upsert item: %w", err)
		return "", err
	}
	return itemID, nil
}
