package collection

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// AccessCollectionUseCase stamps the collection's last access time. Unlike
// the other collection commands it always emits.
type AccessCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewAccessCollectionUseCase creates a new AccessCollectionUseCase
func NewAccessCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *AccessCollectionUseCase {
	return &AccessCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute stamps the access time
func (uc *AccessCollectionUseCase) Execute(ctx context.Context, cmd AccessCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	c, err := requireLiveCollection(ctx, uc.collections, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}

	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewAccessed(c.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append collection accessed: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
