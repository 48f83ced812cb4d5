package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// ListItems returns the full item catalog ordered by name.
func (r *Repository) ListItems(ctx context.Context) ([]model.Item, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_items", err, start)
	}()

	const query = `
SELECT item_id, name, price, stock, created_at
FROM items
ORDER BY name`

	var items []model.Item
	if err = r.db.SelectContext(ctx, &items, query); err != nil {
		err = fmt.Errorf("query items: %w", err)
		return nil, err
	}
	return items, nil
}
