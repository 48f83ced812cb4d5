package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// ItemsByIDs returns the referenced items keyed by id. Unknown ids are simply
// absent from the result; the caller decides whether that is an error.
func (r *Repository) ItemsByIDs(ctx context.Context, itemIDs []string) (map[string]model.Item, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("items_by_ids", err, start)
	}()

	if len(itemIDs) == 0 {
		return map[string]model.Item{}, nil
	}

	query, args, err := sqlx.In(`
SELECT item_id, name, price, stock, created_at
FROM items
WHERE item_id IN (?)`, itemIDs)
	if err != nil {
		err = fmt.Errorf("build items query: %w", err)
		return nil, err
	}

	var items []model.Item
	if err = r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		err = fmt.Errorf("query items: %w", err)
		return nil, err
	}

	byID := make(map[string]model.Item, len(items))
	for _, item := range items {
		byID[item.ItemID] = item
	}
	return byID, nil
}
