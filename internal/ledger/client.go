// Package ledger provides access to the on-chain sales contract. The engine
// owns one explicitly constructed client for its lifetime; nothing here is
// process-global, so tests substitute a fake.
package ledger

import (
	"context"

	"github.com/equipledger/salesledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Client is the operation set the engine needs from the ledger. Write
// operations wait for settlement before returning; a nil error means the
// call was mined successfully.
type Client interface {
	// GetSale reads the on-chain sale record for a transaction id. A record
	// is returned even for unknown ids; check ChainSale.Exists.
	GetSale(ctx context.Context, transactionID string) (*model.ChainSale, error)
	// SubmitVerification sends the off-chain truth for on-chain comparison.
	SubmitVerification(ctx context.Context, transactionID, hash, agentWallet string) error
	// SubmitPaymentUpdate marks the sale paid on-chain.
	SubmitPaymentUpdate(ctx context.Context, transactionID string) error
	// PollSaleEvents returns SaleRecorded events in emission order for the
	// inclusive block range.
	PollSaleEvents(ctx context.Context, fromBlock, toBlock uint64) ([]model.SaleEvent, error)
	// CurrentBlockHeight returns the chain head.
	CurrentBlockHeight(ctx context.Context) (uint64, error)
}
