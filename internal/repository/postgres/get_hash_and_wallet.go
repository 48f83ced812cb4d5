package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/errs"
)

// HashAndWallet returns the stored canonical hash and the owning agent's
// wallet address for a transaction, the off-chain truth submitted for
// on-chain comparison. Returns errs.ErrNotFound for an unknown id.
func (r *Repository) HashAndWallet(ctx context.Context, transactionID string) (hash, wallet string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("hash_and_wallet", err, start)
	}()

	const query = `
SELECT t.hash, u.wallet_address
FROM transactions t
JOIN users u ON u.user_id = t.agent_id
WHERE t.transaction_id = $1`

	var row struct {
		Hash          string `db:"hash"`
		WalletAddress string `db:"wallet_address"`
	}
	if err = r.db.GetContext(ctx, &row, query, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("transaction %s: %w", transactionID, errs.ErrNotFound)
			return "", "", err
		}
		err = fmt.Errorf("query hash and wallet: %w", err)
		return "", "", err
	}

	return row.Hash, row.WalletAddress, nil
}
