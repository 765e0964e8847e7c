package collection

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// FavoriteCollectionUseCase marks a collection as favorite
type FavoriteCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewFavoriteCollectionUseCase creates a new FavoriteCollectionUseCase
func NewFavoriteCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *FavoriteCollectionUseCase {
	return &FavoriteCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute favorites the collection; favoriting a favorite appends nothing
func (uc *FavoriteCollectionUseCase) Execute(ctx context.Context, cmd FavoriteCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	c, err := requireLiveCollection(ctx, uc.collections, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}
	if c.IsFavorite {
		return Result{}, nil
	}

	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewFavorited(c.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append collection favorited: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// UnfavoriteCollectionUseCase clears a collection's favorite flag
type UnfavoriteCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewUnfavoriteCollectionUseCase creates a new UnfavoriteCollectionUseCase
func NewUnfavoriteCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *UnfavoriteCollectionUseCase {
	return &UnfavoriteCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute unfavorites the collection; idempotent on the observable flag
func (uc *UnfavoriteCollectionUseCase) Execute(ctx context.Context, cmd UnfavoriteCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	c, err := requireLiveCollection(ctx, uc.collections, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}
	if !c.IsFavorite {
		return Result{}, nil
	}

	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewUnfavorited(c.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append collection unfavorited: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
