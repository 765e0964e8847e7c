package task

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// DeleteTaskUseCase soft-deletes a single task
type DeleteTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase
func NewDeleteTaskUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute deletes the task
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) (Result, error) {
	now := uc.clock.Now()

	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}

	version, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewTaskDeleted(t.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append task deleted: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
