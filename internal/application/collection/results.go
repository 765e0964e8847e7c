package collection

import "github.com/psychosledge/squickr-life/internal/domain/event"

// Result is the base result of a collection command: the events it
// appended. Idempotent no-ops return an empty Events slice.
type Result struct {
	Events []event.DomainEvent
}

// CreateResult is returned by CreateCollection. Existing reports whether an
// already-existing collection satisfied the command.
type CreateResult struct {
	Result

	CollectionID string
	Existing     bool
}
