package audit

import (
	"context"
	"errors"
	"log/slog"
)

// ErrBufferFull is returned by AsyncPublisher when the worker falls behind.
var ErrBufferFull = errors.New("audit buffer full")

// Worker consumes audit events from a channel and persists them. On shutdown
// it drains whatever is already buffered before returning.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return nil
		case event := <-w.inbox:
			w.append(ctx, event)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case event := <-w.inbox:
			w.append(context.Background(), event)
		default:
			return
		}
	}
}

func (w *Worker) append(ctx context.Context, event Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to persist audit event",
			"event_id", event.ID,
			"action", string(event.Action),
			"error", err.Error(),
		)
	}
}
