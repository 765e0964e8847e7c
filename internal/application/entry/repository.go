package entry

import (
	"context"

	"github.com/psychosledge/squickr-life/internal/domain/entry"
)

// EntryReader is the read-model surface the note, event, and move handlers
// validate against. Declared on the consumer side; implemented by
// projection.EntryList.
type EntryReader interface {
	// GetEntryByID returns any entry by id, including deleted entries and
	// migrated copies
	GetEntryByID(ctx context.Context, id string) (entry.Entry, bool, error)

	// GetSubTasks returns the live child tasks of a parent in order
	GetSubTasks(ctx context.Context, parentID string) ([]entry.Entry, error)

	// LastEntryOrder returns the highest order key over all live entries
	LastEntryOrder(ctx context.Context) (string, error)
}
