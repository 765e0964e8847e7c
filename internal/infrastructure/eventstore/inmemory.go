// Package eventstore provides implementations of the append-only event log:
// an in-memory reference store, an embedded bbolt store, and a MongoDB
// store, all sharing one JSON serialization of the canonical event shape.
package eventstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// InMemoryEventStore is the reference EventStore. It keeps the global log in
// a slice and an index per aggregate. Appends are serialized under one
// mutex; subscribers are notified outside it, once per append or batch.
type InMemoryEventStore struct {
	mu          sync.RWMutex
	log         []event.DomainEvent
	byAggregate map[string][]event.DomainEvent

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewInMemoryEventStore creates an empty in-memory event store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		byAggregate: make(map[string][]event.DomainEvent),
		subs:        make(map[int]func()),
	}
}

// Append appends a single event to the log
func (s *InMemoryEventStore) Append(ctx context.Context, evt event.DomainEvent) error {
	return s.AppendBatch(ctx, []event.DomainEvent{evt})
}

// AppendBatch appends one or more events atomically. Either every event
// becomes durable and subscribers are notified once, or none is.
func (s *InMemoryEventStore) AppendBatch(_ context.Context, events []event.DomainEvent) error {
	if len(events) == 0 {
		return appcore.ErrEmptyBatch
	}

	s.mu.Lock()
	// validate the whole batch before touching the log
	staged := make(map[string]int, len(events))
	for _, evt := range events {
		if err := validateEvent(evt); err != nil {
			s.mu.Unlock()
			return err
		}
		next := len(s.byAggregate[evt.AggregateID()]) + staged[evt.AggregateID()] + 1
		if evt.Version() != next {
			s.mu.Unlock()
			return fmt.Errorf("%w: aggregate %s expected version %d, got %d",
				appcore.ErrVersionConflict, evt.AggregateID(), next, evt.Version())
		}
		staged[evt.AggregateID()]++
	}
	for _, evt := range events {
		s.log = append(s.log, evt)
		s.byAggregate[evt.AggregateID()] = append(s.byAggregate[evt.AggregateID()], evt)
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// GetAll returns every event in global append order
func (s *InMemoryEventStore) GetAll(_ context.Context) ([]event.DomainEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]event.DomainEvent, len(s.log))
	copy(result, s.log)
	return result, nil
}

// GetByID returns every event for an aggregate in order
func (s *InMemoryEventStore) GetByID(_ context.Context, aggregateID string) ([]event.DomainEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.byAggregate[aggregateID]
	result := make([]event.DomainEvent, len(events))
	copy(result, events)
	return result, nil
}

// Subscribe registers a change listener
func (s *InMemoryEventStore) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Len returns the number of events in the log (for tests)
func (s *InMemoryEventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.log)
}

func (s *InMemoryEventStore) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func validateEvent(evt event.DomainEvent) error {
	if evt == nil {
		return fmt.Errorf("%w: nil event", appcore.ErrMalformedEvent)
	}
	if evt.EventID() == "" {
		return fmt.Errorf("%w: missing event id", appcore.ErrMalformedEvent)
	}
	if evt.EventType() == "" {
		return fmt.Errorf("%w: missing event type", appcore.ErrMalformedEvent)
	}
	if evt.AggregateID() == "" {
		return fmt.Errorf("%w: missing aggregate id", appcore.ErrMalformedEvent)
	}
	if evt.Version() < 1 {
		return fmt.Errorf("%w: version %d below 1", appcore.ErrMalformedEvent, evt.Version())
	}
	return nil
}
