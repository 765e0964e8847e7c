package event

import "time"

// DomainEvent is a single immutable record in the journal's append-only log.
type DomainEvent interface {
	// EventID returns the unique id of this event
	EventID() string

	// EventType returns the event type tag
	EventType() string

	// AggregateID returns the ID of the aggregate the event concerns
	AggregateID() string

	// AggregateType returns the aggregate type
	AggregateType() string

	// OccurredAt returns the time the event occurred
	OccurredAt() time.Time

	// Version returns the aggregate version, monotonic per aggregate from 1
	Version() int

	// Metadata returns the event metadata
	Metadata() Metadata
}
