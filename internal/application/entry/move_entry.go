package entry

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// MoveEntryToCollectionUseCase moves an entry of any kind into a collection.
// When the entry is a task with children, every child follows the parent in
// the same atomic batch - children belong to their parent, not to whatever
// collection they were moved to earlier.
type MoveEntryToCollectionUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewMoveEntryToCollectionUseCase creates a new MoveEntryToCollectionUseCase
func NewMoveEntryToCollectionUseCase(
	store appcore.EventStore,
	entries EntryReader,
	clk clock.Clock,
) *MoveEntryToCollectionUseCase {
	return &MoveEntryToCollectionUseCase{store: store, entries: entries, clock: clk}
}

// Execute moves the entry. Moving to the collection the entry is already in
// appends nothing.
func (uc *MoveEntryToCollectionUseCase) Execute(ctx context.Context, cmd MoveEntryToCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	e, err := requireLiveEntry(ctx, uc.entries, cmd.EntryID)
	if err != nil {
		return Result{}, err
	}
	if e.LiveLocation() == cmd.CollectionID {
		return Result{}, nil
	}

	md := commandMetadata(cmd.UserID, now)

	batch := make([]event.DomainEvent, 0, 1)
	version, err := nextVersion(ctx, uc.store, e.ID)
	if err != nil {
		return Result{}, err
	}
	batch = append(batch, entry.NewEntryMovedToCollection(
		e.ID, e.Kind, version, now, md,
		cmd.CollectionID, e.LiveLocation(),
	))

	if e.Kind == entry.KindTask {
		children, cErr := uc.entries.GetSubTasks(ctx, e.ID)
		if cErr != nil {
			return Result{}, cErr
		}
		for _, c := range children {
			childVersion, vErr := nextVersion(ctx, uc.store, c.ID)
			if vErr != nil {
				return Result{}, vErr
			}
			batch = append(batch, entry.NewEntryMovedToCollection(
				c.ID, c.Kind, childVersion, now, md,
				cmd.CollectionID, c.LiveLocation(),
			))
		}
	}

	if len(batch) == 1 {
		err = uc.store.Append(ctx, batch[0])
	} else {
		err = uc.store.AppendBatch(ctx, batch)
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to append move batch: %w", err)
	}
	return Result{Events: batch}, nil
}
