package sales

import (
	"context"

	"github.com/equipledger/salesledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the slice of the transaction store the sales service needs.
	Store interface {
		CreateTransaction(ctx context.Context, transaction model.Transaction) error
		ItemsByIDs(ctx context.Context, itemIDs []string) (map[string]model.Item, error)
		ListItems(ctx context.Context) ([]model.Item, error)
		ListByAgent(ctx context.Context, agentID string) ([]model.Transaction, error)
	}
)
