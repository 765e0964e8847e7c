package collection

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
)

// ReorderCollectionUseCase places a collection between two neighbor
// collections
type ReorderCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewReorderCollectionUseCase creates a new ReorderCollectionUseCase
func NewReorderCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *ReorderCollectionUseCase {
	return &ReorderCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute reorders the collection. Reordering into the slot it already
// occupies appends nothing.
func (uc *ReorderCollectionUseCase) Execute(ctx context.Context, cmd ReorderCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	c, err := requireLiveCollection(ctx, uc.collections, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}

	var prevOrder, nextOrder string
	if cmd.PreviousCollectionID != "" {
		prev, pErr := requireLiveCollection(ctx, uc.collections, cmd.PreviousCollectionID)
		if pErr != nil {
			return Result{}, pErr
		}
		prevOrder = prev.Order
	}
	if cmd.NextCollectionID != "" {
		next, nErr := requireLiveCollection(ctx, uc.collections, cmd.NextCollectionID)
		if nErr != nil {
			return Result{}, nErr
		}
		nextOrder = next.Order
	}

	if orderWithin(c.Order, prevOrder, nextOrder) {
		return Result{}, nil
	}

	order, err := fracindex.KeyBetween(prevOrder, nextOrder)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate order key: %w", err)
	}
	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewReordered(c.ID, version, now, commandMetadata(cmd.UserID, now), order)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append collection reordered: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
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
