package payment

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/equipledger/salesledger-backend/internal/model"
)

type Store interface {
	GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error)
	ListByStatus(ctx context.Context, status model.Status) ([]model.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status model.Status) error
}

type LedgerClient interface {
	GetSale(ctx context.Context, transactionID string) (*model.ChainSale, error)
	SubmitPaymentUpdate(ctx context.Context, transactionID string) error
}
