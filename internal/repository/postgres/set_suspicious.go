package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/errs"
)

// SetSuspicious raises the suspicion flag. The flag is monotonic; flagging an
// already-flagged transaction is a no-op success. Returns errs.ErrNotFound
// for an unknown id.
func (r *Repository) SetSuspicious(ctx context.Context, transactionID string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_suspicious", err, start)
	}()

	const update = `
UPDATE transactions
SET suspicious = TRUE
WHERE transaction_id = $1`

	res, err := r.db.ExecContext(ctx, update, transactionID)
	if err != nil {
		err = fmt.Errorf("set suspicious: %w", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		err = fmt.Errorf("rows affected: %w", err)
		return err
	}
	if affected == 0 {
		err = fmt.Errorf("transaction %s: %w", transactionID, errs.ErrNotFound)
		return err
	}
	return nil
}
