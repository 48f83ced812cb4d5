package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// UpsertUser inserts a user or refreshes name/wallet/role for an existing
// email. Used by the seeder.
func (r *Repository) UpsertUser(ctx context.Context, user model.User) (string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_user", err, start)
	}()

	const query = `
INSERT INTO users (name, email, wallet_address, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email)
DO UPDATE SET name = EXCLUDED.name, wallet_address = EXCLUDED.wallet_address, role = EXCLUDED.role
RETURNING user_id`

	var userID string
	if err = r.db.GetContext(ctx, &userID, query, user.Name, user.Email, user.WalletAddress, user.Role); err != nil {
		err = fmt.Errorf("upsert user: %w", err)
		return "", err
	}
	return userID, nil
}
