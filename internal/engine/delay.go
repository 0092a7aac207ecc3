package engine

import (
	"context"
	"time"
)

// DelaySignal paces auto-advance between emitted nodes. The host owns
// presentation timing; headless callers use NoDelay.
type DelaySignal interface {
	Wait(ctx context.Context) error
}

// NoDelay advances immediately.
type NoDelay struct{}

func (NoDelay) Wait(context.Context) error { return nil }

// FixedDelay waits a fixed duration between auto-advanced nodes,
// honoring context cancellation.
type FixedDelay struct {
	D time.Duration
}

func (f FixedDelay) Wait(ctx context.Context) error {
	if f.D <= 0 {
		return nil
	}
	t := time.NewTimer(f.D)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
