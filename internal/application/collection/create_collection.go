package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// DuplicateWindow is how long a second create with the same normalized
// name and user returns the existing collection instead of a new one. It
// exists to absorb human double-clicks; dated collections dedupe on their
// natural key regardless of time.
const DuplicateWindow = 5 * time.Second

// CreateCollectionUseCase handles the creation of a new collection
type CreateCollectionUseCase struct {
	appcore.BaseUseCase

	store       appcore.EventStore
	collections CollectionReader
	clock       clock.Clock
}

// NewCreateCollectionUseCase creates a new CreateCollectionUseCase
func NewCreateCollectionUseCase(
	store appcore.EventStore,
	collections CollectionReader,
	clk clock.Clock,
) *CreateCollectionUseCase {
	return &CreateCollectionUseCase{store: store, collections: collections, clock: clk}
}

// Execute creates the collection, or returns the existing one when the
// natural key (type+date) or the recent-duplicate window matches.
func (uc *CreateCollectionUseCase) Execute(ctx context.Context, cmd CreateCollectionCommand) (CreateResult, error) {
	now := uc.clock.Now()

	typ := cmd.Type
	if typ == "" {
		typ = collection.TypeLog
	}
	name, err := collection.NormalizeName(cmd.Name)
	if err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}
	if err = collection.ValidateType(typ); err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}
	if err = collection.ValidateDate(typ, cmd.Date); err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}

	// dated collections are unique per (type, date) for all time
	if typ.HasDate() {
		existing, ok, fErr := uc.collections.FindByTypeAndDate(ctx, typ, cmd.Date)
		if fErr != nil {
			return CreateResult{}, fErr
		}
		if ok {
			return CreateResult{CollectionID: existing.ID, Existing: true}, nil
		}
	}

	// double-click protection on (normalized name, user)
	recent, ok, err := uc.collections.FindLatestByName(ctx, collection.NameKey(name), cmd.UserID)
	if err != nil {
		return CreateResult{}, err
	}
	if ok && now.Sub(recent.CreatedAt) < DuplicateWindow {
		return CreateResult{CollectionID: recent.ID, Existing: true}, nil
	}

	lastOrder, err := uc.collections.LastCollectionOrder(ctx)
	if err != nil {
		return CreateResult{}, err
	}
	order, err := fracindex.KeyBetween(lastOrder, "")
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to generate order key: %w", err)
	}

	collectionID := uuid.NewUUID().String()
	evt := collection.NewCreated(
		collectionID, 1, now,
		commandMetadata(cmd.UserID, now),
		name, typ, cmd.Date, order, cmd.UserID,
	)
	if err = uc.store.Append(ctx, evt); err != nil {
		return CreateResult{}, fmt.Errorf("failed to append collection created: %w", err)
	}

	return CreateResult{
		Result:       Result{Events: []event.DomainEvent{evt}},
		CollectionID: collectionID,
	}, nil
}
