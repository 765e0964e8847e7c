package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// commandMetadata builds the metadata every event of one command shares.
func commandMetadata(userID string, now time.Time) event.Metadata {
	return event.NewMetadata(userID, uuid.NewUUID().String(), now)
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

// requireLiveKind loads a live entry and checks its kind.
func requireLiveKind(ctx context.Context, entries EntryReader, id string, kind entry.Kind) (entry.Entry, error) {
	e, err := requireLiveEntry(ctx, entries, id)
	if err != nil {
		return entry.Entry{}, err
	}
	if e.Kind != kind {
		return entry.Entry{}, appcore.NewNotFoundError(string(kind), id)
	}
	return e, nil
}

// appendOrder returns an order key after the last live entry.
func appendOrder(ctx context.Context, entries EntryReader) (string, error) {
	last, err := entries.LastEntryOrder(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read entry order: %w", err)
	}
	order, err := fracindex.KeyBetween(last, "")
	if err != nil {
		return "", fmt.Errorf("failed to generate order key: %w", err)
	}
	return order, nil
}

// neighborOrders resolves the order keys of optional neighbor entries.
func neighborOrders(ctx context.Context, entries EntryReader, prevID, nextID string) (string, string, error) {
	var prevOrder, nextOrder string
	if prevID != "" {
		prev, err := requireLiveEntry(ctx, entries, prevID)
		if err != nil {
			return "", "", err
		}
		prevOrder = prev.Order
	}
	if nextID != "" {
		next, err := requireLiveEntry(ctx, entries, nextID)
		if err != nil {
			return "", "", err
		}
		nextOrder = next.Order
	}
	return prevOrder, nextOrder, nil
}

// orderWithin reports whether key already lies strictly between the bounds.
func orderWithin(key, prev, next string) bool {
	if key == "" {
		return false
	}
	if prev != "" && key <= prev {
		return false
	}
	if next != "" && key >= next {
		return false
	}
	return true
}

// nextVersion returns the version the aggregate's next event must carry.
func nextVersion(ctx context.Context, store appcore.EventStore, aggregateID string) (int, error) {
	return appcore.NextVersion(ctx, store, aggregateID)
}
