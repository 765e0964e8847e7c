package task

import (
	"context"
	"time"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// commandMetadata builds the metadata every event of one command shares.
func commandMetadata(userID string, now time.Time) event.Metadata {
	return event.NewMetadata(userID, uuid.NewUUID().String(), now)
}

// requireLiveTask loads a task that exists and is not deleted.
func requireLiveTask(ctx context.Context, entries EntryReader, id string) (entry.Entry, error) {
	e, ok, err := entries.GetEntryByID(ctx, id)
	if err != nil {
		return entry.Entry{}, err
	}
	if !ok || e.Deleted || e.Kind != entry.KindTask {
		return entry.Entry{}, appcore.NewNotFoundError("task", id)
	}
	return e, nil
}

// requireLiveEntry loads an entry of any kind that exists and is not deleted.
func requireLiveEntry(ctx context.Context, entries EntryReader, id string) (entry.Entry, error) {
	e, ok, err := entries.GetEntryByID(ctx, id)
	if err != nil {
		return entry.Entry{}, err
	}
	if !ok || e.Deleted {
		return entry.Entry{}, appcore.NewNotFoundError("entry", id)
	}
	return e, nil
}

// nextVersion returns the version the aggregate's next event must carry.
func nextVersion(ctx context.Context, store appcore.EventStore, aggregateID string) (int, error) {
	return appcore.NextVersion(ctx, store, aggregateID)
}
