package entry

import "github.com/psychosledge/squickr-life/internal/domain/event"

// Result is the base result of an entry command: the events it appended.
// Idempotent no-ops return an empty Events slice.
type Result struct {
	Events []event.DomainEvent
}

// CreateResult is returned by note and event creation commands
type CreateResult struct {
	Result

	EntryID string
}

// MigrateResult is returned by the note and event migration commands
type MigrateResult struct {
	Result

	MigratedToID string
}
