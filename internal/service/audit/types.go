package audit

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/equipledger/salesledger-backend/internal/model"
)

type Store interface {
	GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error)
	ListUnaudited(ctx context.Context) ([]model.Transaction, error)
	SetSuspicious(ctx context.Context, transactionID string) error
}

type LedgerClient interface {
	GetSale(ctx context.Context, transactionID string) (*model.ChainSale, error)
}

// Reason explains an integrity check outcome.
type Reason string

const (
	ReasonMatch         Reason = "match"
	ReasonMismatch      Reason = "mismatch"
	ReasonNotFoundLocal Reason = "not_found_local"
	ReasonNotFoundChain Reason = "not_found_chain"
	ReasonRPCError      Reason = "rpc_error"
)

// Verdict is the result of comparing a local transaction against its
// on-chain record.
type Verdict struct {
	Match      bool             `json:"match"`
	Reason     Reason           `json:"reason"`
	IsVerified bool             `json:"is_verified"`
	IsPaid     bool             `json:"is_paid"`
	Chain      *model.ChainSale `json:"chain,omitempty"`
}
