package collection

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// UpdateCollectionSettingsUseCase replaces a collection's settings. The
// payload is logged as written; equivalence is judged on the materialized
// value, so the legacy collapseCompleted=false equals keep-in-place.
type UpdateCollectionSettingsUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewUpdateCollectionSettingsUseCase creates a new UpdateCollectionSettingsUseCase
func NewUpdateCollectionSettingsUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *UpdateCollectionSettingsUseCase {
	return &UpdateCollectionSettingsUseCase{store: store, collections: collections, clock: clk}
}

// Execute updates the settings. Setting equivalent settings appends nothing.
func (uc *UpdateCollectionSettingsUseCase) Execute(
	ctx context.Context,
	cmd UpdateCollectionSettingsCommand,
) (Result, error) {
	now := uc.clock.Now()

	c, err := requireLiveCollection(ctx, uc.collections, cmd.CollectionID)
	if err != nil {
		return Result{}, err
	}
	if c.Settings.Equivalent(cmd.Settings) {
		return Result{}, nil
	}

	version, err := nextVersion(ctx, uc.store, c.ID)
	if err != nil {
		return Result{}, err
	}
	evt := collection.NewSettingsUpdated(c.ID, version, now, commandMetadata(cmd.UserID, now), cmd.Settings)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append settings update: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
