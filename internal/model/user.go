package model

import "time"

// Role determines which workflows a user participates in.
type Role string

var (
	RoleAgent   Role = "Agent"
	RoleAuditor Role = "Auditor"
)

// User holds an operator-managed identity with its on-chain wallet address.
type User struct {
	UserID        string    `db:"user_id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	WalletAddress string    `db:"wallet_address"`
	Role          Role      `db:"role"`
	CreatedAt     time.Time `db:"created_at"`
}
