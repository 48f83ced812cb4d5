// Package model defines domain models for the sales ledger.
package model

import "time"

// Status describes the reconciliation state of a transaction.
type Status string

var (
	// StatusUnverified marks a transaction recorded off-chain but not yet verified on-chain.
	StatusUnverified Status = "unverified"
	// StatusPending marks a transaction whose on-chain verification succeeded.
	StatusPending Status = "pending"
	// StatusPaid marks a transaction settled on-chain.
	StatusPaid Status = "paid"
)

// Transaction is the off-chain record of a sale. TotalAmt and TotalQty are
// always the sums over Details; Hash is computed once at creation and never
// recomputed in place.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	AgentID       string    `db:"agent_id"`
	AuditorID     *string   `db:"auditor_id"`
	TotalAmt      int64     `db:"total_amt"`
	TotalQty      int64     `db:"total_qty"`
	Hash          string    `db:"hash"`
	Status        Status    `db:"status"`
	Suspicious    bool      `db:"suspicious"`
	CreatedAt     time.Time `db:"created_at"`
	Details       []TransactionDetail
}

// TransactionDetail is one line of a sale. PriceAtTime is copied from the
// item at sale time so later price edits do not alter history.
type TransactionDetail struct {
	TransactionID string `db:"transaction_id"`
	ItemID        string `db:"item_id"`
	Qty           int64  `db:"qty"`
	PriceAtTime   int64  `db:"price_at_time"`
}
