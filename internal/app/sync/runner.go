package sync

import (
	"context"
	"time"
)

// defaultInterval matches the production schedule of the feed
// reconciliation.
const defaultInterval = 5 * time.Minute

// Runner drives the syncer on a fixed interval until the context is
// cancelled. The first pass runs immediately.
type Runner struct {
	Syncer   *Syncer
	Interval time.Duration
}

func (r *Runner) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.Syncer.SyncAll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Syncer.SyncAll(ctx)
		}
	}
}
