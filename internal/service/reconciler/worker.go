package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/equipledger/salesledger-backend/internal/clock"
	"github.com/equipledger/salesledger-backend/internal/model"
	"go.uber.org/zap"
)

// Worker is the oracle loop. It follows the chain head, polls the contract
// for SaleRecorded events past its watermark, hands each event to the
// processor in block order, and runs a repair pass that settles transactions
// already marked paid on-chain.
//
// The watermark only advances after every event in the polled range has been
// processed, so a failed cycle replays the same range on the next tick.
// Event processing is idempotent, replays are harmless.
type Worker struct {
	ledger    LedgerClient
	store     Store
	processor EventProcessor
	metrics   Metrics
	logger    *zap.Logger

	pollInterval time.Duration
	sleep        clock.Sleeper

	lastProcessedBlock uint64
}

func NewWorker(
	ledger LedgerClient,
	store Store,
	processor EventProcessor,
	metrics Metrics,
	logger *zap.Logger,
	pollInterval time.Duration,
) *Worker {
	return &Worker{
		ledger:       ledger,
		store:        store,
		processor:    processor,
		metrics:      metrics,
		logger:       logger,
		pollInterval: pollInterval,
		sleep:        clock.SleepWithContext,
	}
}

// Run blocks until ctx is cancelled. The watermark starts at the chain head
// observed at startup, so historical events are not replayed across restarts.
func (w *Worker) Run(ctx context.Context) error {
	head, err := w.ledger.CurrentBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("read chain head at startup: %w", err)
	}
	w.lastProcessedBlock = head
	w.metrics.SetWatermark(head)
	w.logger.Info("oracle worker started", zap.Uint64("from_block", head))

	for {
		if err := w.sleep(ctx, w.pollInterval); err != nil {
			return err
		}

		if err := w.pollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Error("poll cycle failed", zap.Error(err))
			continue
		}

		if err := w.repairOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Error("repair cycle failed", zap.Error(err))
		}
	}
}

// pollOnce advances the watermark over at most one head reading. Events are
// processed strictly in the order the node returned them.
func (w *Worker) pollOnce(ctx context.Context) (err error) {
	started := time.Now()
	var events []model.SaleEvent
	defer func() {
		w.metrics.ObservePollCycle(err, len(events), started)
	}()

	head, err := w.ledger.CurrentBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}
	if head <= w.lastProcessedBlock {
		return nil
	}

	fromBlock := w.lastProcessedBlock + 1
	events, err = w.ledger.PollSaleEvents(ctx, fromBlock, head)
	if err != nil {
		return fmt.Errorf("poll events %d..%d: %w", fromBlock, head, err)
	}

	for _, event := range events {
		if err = w.processor.ProcessEvent(ctx, event); err != nil {
			return fmt.Errorf("process event for %s: %w", event.TransactionID, err)
		}
	}

	w.lastProcessedBlock = head
	w.metrics.SetWatermark(head)

	if len(events) > 0 {
		w.logger.Info("processed sale events",
			zap.Int("events", len(events)),
			zap.Uint64("from_block", fromBlock),
			zap.Uint64("to_block", head))
	}
	return nil
}

// repairOnce advances transactions that were settled on-chain while this
// worker was not watching. Payment happens outside the event stream, so the
// only signal is the isPaid flag on the contract record.
func (w *Worker) repairOnce(ctx context.Context) (err error) {
	started := time.Now()
	var advanced int
	defer func() {
		w.metrics.ObserveRepairCycle(err, advanced, started)
	}()

	pending, err := w.store.ListByStatus(ctx, model.StatusPending)
	if err != nil {
		return fmt.Errorf("list pending transactions: %w", err)
	}

	for _, transaction := range pending {
		sale, err := w.ledger.GetSale(ctx, transaction.TransactionID)
		if err != nil {
			return fmt.Errorf("read sale %s: %w", transaction.TransactionID, err)
		}
		if !sale.Exists() || !sale.IsPaid {
			continue
		}

		if err := w.store.UpdateStatus(ctx, transaction.TransactionID, model.StatusPaid); err != nil {
			return fmt.Errorf("advance %s to paid: %w", transaction.TransactionID, err)
		}
		advanced++
		w.logger.Info("settled payment from chain state",
			zap.String("transaction_id", transaction.TransactionID))
	}
	return nil
}
