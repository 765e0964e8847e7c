package collection

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// DeleteCollectionUseCase soft-deletes a collection. The collection stays
// in the log and can be restored.
type DeleteCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewDeleteCollectionUseCase creates a new DeleteCollectionUseCase
func NewDeleteCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *DeleteCollectionUseCase {
	return &DeleteCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute deletes the collection
func (uc *DeleteCollectionUseCase) Execute(ctx context.Context, cmd DeleteCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	c, err := requireLiveCollection(ctx, uc.collections, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}

	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewDeleted(c.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append collection deleted: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// RestoreCollectionUseCase reverses a soft delete
type RestoreCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewRestoreCollectionUseCase creates a new RestoreCollectionUseCase
func NewRestoreCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *RestoreCollectionUseCase {
	return &RestoreCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute restores the collection; restoring a live collection fails
func (uc *RestoreCollectionUseCase) Execute(ctx context.Context, cmd RestoreCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	c, ok, err := uc.collections.GetCollectionByIDIncludingDeleted(ctx, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, appcore.NewNotFoundError("collection", cmd.CollectionID)
	}
	if !c.IsDeleted() {
		return Result{}, fmt.Errorf("%w: collection %s is not deleted", errs.ErrInvalidTransition, c.ID)
	}

	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewRestored(c.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append collection restored: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
