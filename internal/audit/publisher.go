package audit

import (
	"context"

	"github.com/google/uuid"

	"vaxreg/pkg/requestcontext"
)

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Publisher stamps events and appends them to a store.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit fills in ID, Timestamp and RequestID when they are unset.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	return p.store.Append(ctx, stamp(ctx, base))
}

func stamp(ctx context.Context, e Event) Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = requestcontext.Now(ctx)
	}
	if e.RequestID == "" {
		e.RequestID = requestcontext.RequestID(ctx)
	}
	return e
}

// AsyncPublisher hands events to a Worker over a buffered channel. Emit never
// blocks; events are dropped with ErrBufferFull when the buffer is full.
type AsyncPublisher struct {
	events chan Event
}

func NewAsyncPublisher(buffer int) *AsyncPublisher {
	if buffer <= 0 {
		buffer = 1
	}
	return &AsyncPublisher{events: make(chan Event, buffer)}
}

func (p *AsyncPublisher) Emit(ctx context.Context, base Event) error {
	select {
	case p.events <- stamp(ctx, base):
		return nil
	default:
		return ErrBufferFull
	}
}

// Events is the inbox to hand to NewWorker.
func (p *AsyncPublisher) Events() <-chan Event {
	return p.events
}

