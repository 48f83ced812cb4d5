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

// statusPredecessor encodes the one-directional state machine
// unverified -> pending -> paid.
var statusPredecessor = map[model.Status]model.Status{
	model.StatusPending: model.StatusUnverified,
	model.StatusPaid:    model.StatusPending,
}

// UpdateStatus advances a transaction to newStatus. The transition is guarded
// in SQL so concurrent callers cannot skip or reverse a step. A transaction
// already at newStatus is a no-op success, which keeps event reprocessing
// idempotent. Returns errs.ErrNotFound for an unknown id and
// errs.ErrInvalidState when the current status does not precede newStatus.
func (r *Repository) UpdateStatus(ctx context.Context, transactionID string, newStatus model.Status) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_status", err, start)
	}()

	previous, ok := statusPredecessor[newStatus]
	if !ok {
		err = fmt.Errorf("%w: no transition to %q", errs.ErrInvalidState, newStatus)
		return err
	}

	const update = `
UPDATE transactions
SET status = $2
WHERE transaction_id = $1 AND status = $3
RETURNING transaction_id`

	var updated string
	err = r.db.GetContext(ctx, &updated, update, transactionID, newStatus, previous)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("update status: %w", err)
		return err
	}

	// No row transitioned; distinguish missing, already-advanced and invalid.
	const current = `SELECT status FROM transactions WHERE transaction_id = $1`

	var status model.Status
	if err = r.db.GetContext(ctx, &status, current, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("transaction %s: %w", transactionID, errs.ErrNotFound)
			return err
		}
		err = fmt.Errorf("query current status: %w", err)
		return err
	}

	if status == newStatus {
		err = nil
		return nil
	}
	err = fmt.Errorf("%w: cannot move %s from %q to %q", errs.ErrInvalidState, transactionID, status, newStatus)
	return err
}
