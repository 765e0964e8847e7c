package task

import (
	"context"
	"fmt"
	"slices"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// AddTaskToCollectionUseCase adds a task to a collection's membership list
type AddTaskToCollectionUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewAddTaskToCollectionUseCase creates a new AddTaskToCollectionUseCase
func NewAddTaskToCollectionUseCase(
	store appcore.EventStore,
	entries EntryReader,
	clk clock.Clock,
) *AddTaskToCollectionUseCase {
	return &AddTaskToCollectionUseCase{store: store, entries: entries, clock: clk}
}

// Execute adds the task to the collection. Adding to a collection the task
// is already in appends nothing.
func (uc *AddTaskToCollectionUseCase) Execute(ctx context.Context, cmd AddTaskToCollectionCommand) (Result, error) {
	now := uc.clock.Now()

	if cmd.CollectionID == "" {
		return Result{}, appcore.NewValidationError("collectionId", "is required")
	}
	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}
	if slices.Contains(t.CurrentCollections(), cmd.CollectionID) {
		return Result{}, nil
	}

	version, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewTaskAddedToCollection(t.ID, version, now, commandMetadata(cmd.UserID, now), cmd.CollectionID)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append membership add: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// RemoveTaskFromCollectionUseCase removes a task from a collection's
// membership list. Removing the last membership leaves an orphan, which is
// permitted.
type RemoveTaskFromCollectionUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewRemoveTaskFromCollectionUseCase creates a new RemoveTaskFromCollectionUseCase
func NewRemoveTaskFromCollectionUseCase(
	store appcore.EventStore,
	entries EntryReader,
	clk clock.Clock,
) *RemoveTaskFromCollectionUseCase {
	return &RemoveTaskFromCollectionUseCase{store: store, entries: entries, clock: clk}
}

// Execute removes the task from the collection. Removing from a collection
// the task is not in appends nothing.
func (uc *RemoveTaskFromCollectionUseCase) Execute(
	ctx context.Context,
	cmd RemoveTaskFromCollectionCommand,
) (Result, error) {
	now := uc.clock.Now()

	if cmd.CollectionID == "" {
		return Result{}, appcore.NewValidationError("collectionId", "is required")
	}
	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}
	if !slices.Contains(t.CurrentCollections(), cmd.CollectionID) {
		return Result{}, nil
	}

	version, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewTaskRemovedFromCollection(t.ID, version, now, commandMetadata(cmd.UserID, now), cmd.CollectionID)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append membership removal: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
