// Package clock provides context-aware time helpers for the worker loops.
package clock

import (
	"context"
	"time"
)

// Sleeper is the sleep dependency injected into workers so tests can skip
// real waiting.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for d or returns early with the context's error if
// it is canceled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
