package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// commandMetadata builds the metadata every event of one command shares.
func commandMetadata(userID string, now time.Time) event.Metadata {
	return event.NewMetadata(userID, uuid.NewUUID().String(), now)
}

// requireLiveCollection loads a collection that exists and is not deleted;
// mutating a deleted collection fails.
func requireLiveCollection(ctx context.Context, reader CollectionReader, id string) (collection.Collection, error) {
	c, ok, err := reader.GetCollectionByIDIncludingDeleted(ctx, id)
	if err != nil {
		return collection.Collection{}, err
	}
	if !ok {
		return collection.Collection{}, appcore.NewNotFoundError("collection", id)
	}
	if c.IsDeleted() {
		return collection.Collection{}, fmt.Errorf("%w: %s", errs.ErrCollectionDeleted, id)
	}
	return c, nil
}

// nextVersion returns the version the aggregate's next event must carry.
func nextVersion(ctx context.Context, store appcore.EventStore, aggregateID string) (int, error) {
	return appcore.NextVersion(ctx, store, aggregateID)
}
