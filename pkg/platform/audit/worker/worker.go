package worker

import (
	"context"
	"log/slog"

	audit "climbreg/pkg/platform/audit"
)

// Worker consumes audit events from a channel and persists them until the
// channel is closed or ctx is done.
type Worker struct {
	store  audit.Store
	inbox  <-chan audit.Event
	logger *slog.Logger
	failed func()
}

// NewWorker returns a Worker. failed, when non-nil, is called for every event
// the store rejects.
func NewWorker(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger, failed func()) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger, failed: failed}
}

// Run drains the inbox. A failed write is logged and skipped so one bad
// event cannot stall the queue.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit event not persisted",
					"action", event.Action,
					"subject", event.Subject,
					"error", err,
				)
				if w.failed != nil {
					w.failed()
				}
			}
		}
	}
}
