package collection

import (
	"context"

	"github.com/psychosledge/squickr-life/internal/domain/collection"
)

// CollectionReader is the read-model surface the collection handlers
// validate against. Declared on the consumer side; implemented by
// projection.CollectionList.
type CollectionReader interface {
	// GetCollectionByIDIncludingDeleted returns a collection whether or not
	// it is soft-deleted
	GetCollectionByIDIncludingDeleted(ctx context.Context, id string) (collection.Collection, bool, error)

	// FindByTypeAndDate returns the live collection with the given natural key
	FindByTypeAndDate(ctx context.Context, typ collection.Type, date string) (collection.Collection, bool, error)

	// FindLatestByName returns the most recently created live collection
	// whose normalized name and creator match
	FindLatestByName(ctx context.Context, nameKey, createdBy string) (collection.Collection, bool, error)

	// LastCollectionOrder returns the highest order key over live collections
	LastCollectionOrder(ctx context.Context) (string, error)
}
