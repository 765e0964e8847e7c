package task

import "github.com/psychosledge/squickr-life/internal/domain/event"

// Result is the base result of a task command: the events it appended.
// Idempotent no-ops return an empty Events slice.
type Result struct {
	Events []event.DomainEvent
}

// CreateResult is returned by task creation commands
type CreateResult struct {
	Result

	TaskID string
}

// MigrateResult is returned by MigrateTask. ChildMigrations maps each
// cascaded child id to its migrated copy id.
type MigrateResult struct {
	Result

	MigratedToID    string
	ChildMigrations map[string]string
}
