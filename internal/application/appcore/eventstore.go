package appcore

import (
	"context"
	"errors"

	"github.com/psychosledge/squickr-life/internal/domain/event"
)

var (
	// ErrMalformedEvent is returned when an event fails well-formedness checks
	ErrMalformedEvent = errors.New("malformed event")

	// ErrVersionConflict is returned when an event's version is not the
	// aggregate's next version
	ErrVersionConflict = errors.New("aggregate version conflict")

	// ErrEmptyBatch is returned when appending a batch with no events
	ErrEmptyBatch = errors.New("empty event batch")
)

// EventStore is the append-only, globally ordered event log. The interface
// is declared here (on the consumer side - application layer), not in
// infrastructure, following idiomatic Go approach.
//
// Append and AppendBatch assign each event a global sequence position and
// notify subscribers exactly once per call, after the write is durable.
// AppendBatch is all-or-nothing. A failed append leaves the log untouched.
type EventStore interface {
	// Append appends a single event to the log
	Append(ctx context.Context, evt event.DomainEvent) error

	// AppendBatch appends one or more events atomically
	AppendBatch(ctx context.Context, events []event.DomainEvent) error

	// GetAll returns every event in global append order
	GetAll(ctx context.Context) ([]event.DomainEvent, error)

	// GetByID returns every event for an aggregate in order. An unknown
	// aggregate yields an empty slice, not an error.
	GetByID(ctx context.Context, aggregateID string) ([]event.DomainEvent, error)

	// Subscribe registers a change listener and returns its unsubscribe
	// function. Listeners receive no change summary; they re-read
	// projections on demand.
	Subscribe(fn func()) (unsubscribe func())
}

// NextVersion returns the version the aggregate's next event must carry.
func NextVersion(ctx context.Context, store EventStore, aggregateID string) (int, error) {
	events, err := store.GetByID(ctx, aggregateID)
	if err != nil {
		return 0, err
	}
	return len(events) + 1, nil
}
