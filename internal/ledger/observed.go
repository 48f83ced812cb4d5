package ledger

import (
	"context"
	"time"

	"github.com/equipledger/salesledger-backend/internal/model"
	"go.uber.org/ratelimit"
)

type (
	// Metrics records outcome and duration of ledger operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps a Client with metrics and a client-side rate limit so
// the polling loop cannot saturate a public RPC endpoint.
type ObservedClient struct {
	client  Client
	metrics Metrics
	limiter ratelimit.Limiter
}

// NewObservedClient builds an ObservedClient. requestsPerSecond <= 0 disables
// rate limiting.
func NewObservedClient(client Client, metrics Metrics, requestsPerSecond int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if requestsPerSecond > 0 {
		limiter = ratelimit.New(requestsPerSecond)
	}
	return &ObservedClient{
		client:  client,
		metrics: metrics,
		limiter: limiter,
	}
}

func (c *ObservedClient) GetSale(ctx context.Context, transactionID string) (sale *model.ChainSale, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_sale", err, started)
	}()
	return c.client.GetSale(ctx, transactionID)
}

func (c *ObservedClient) SubmitVerification(ctx context.Context, transactionID, hash, agentWallet string) (err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_verification", err, started)
	}()
	return c.client.SubmitVerification(ctx, transactionID, hash, agentWallet)
}

func (c *ObservedClient) SubmitPaymentUpdate(ctx context.Context, transactionID string) (err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_payment_update", err, started)
	}()
	return c.client.SubmitPaymentUpdate(ctx, transactionID)
}

func (c *ObservedClient) PollSaleEvents(ctx context.Context, fromBlock, toBlock uint64) (events []model.SaleEvent, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("poll_events", err, started)
	}()
	return c.client.PollSaleEvents(ctx, fromBlock, toBlock)
}

func (c *ObservedClient) CurrentBlockHeight(ctx context.Context) (height uint64, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("current_block_height", err, started)
	}()
	return c.client.CurrentBlockHeight(ctx)
}
