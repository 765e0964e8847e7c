package collection

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// RenameCollectionUseCase renames a collection
type RenameCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewRenameCollectionUseCase creates a new RenameCollectionUseCase
func NewRenameCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *RenameCollectionUseCase {
	return &RenameCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute renames the collection. Renaming to the current name appends
// nothing.
func (uc *RenameCollectionUseCase) Execute(ctx context.Context, cmd RenameCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	name, err := collection.NormalizeName(cmd.Name)
	if err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}
	c, err := requireLiveCollection(ctx, uc.collections, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}
	if c.Name == name {
		return Result{}, nil
	}

	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewRenamed(c.ID, version, now, commandMetadata(cmd.UserID, now), name)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append collection renamed: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
