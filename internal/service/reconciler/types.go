package reconciler

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
)

// LedgerClient is the slice of the on-chain client the oracle worker needs.
type LedgerClient interface {
	GetSale(ctx context.Context, transactionID string) (*model.ChainSale, error)
	SubmitVerification(ctx context.Context, transactionID, hash, agentAddress string) error
	PollSaleEvents(ctx context.Context, fromBlock, toBlock uint64) ([]model.SaleEvent, error)
	CurrentBlockHeight(ctx context.Context) (uint64, error)
}

// Store is the slice of the transaction store the oracle worker needs.
type Store interface {
	HashAndWallet(ctx context.Context, transactionID string) (hash, wallet string, err error)
	UpdateStatus(ctx context.Context, transactionID string, status model.Status) error
	ListByStatus(ctx context.Context, status model.Status) ([]model.Transaction, error)
}

type Metrics interface {
	ObservePollCycle(err error, events int, started time.Time)
	ObserveProcessEvent(err error, started time.Time)
	ObserveRepairCycle(err error, advanced int, started time.Time)
	SetWatermark(height uint64)
}

// EventProcessor reconciles a single SaleRecorded event against the local
// store and the contract state.
type EventProcessor interface {
	ProcessEvent(ctx context.Context, event model.SaleEvent) error
}
