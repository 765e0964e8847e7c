package task

import (
	"context"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// DeleteParentTaskUseCase deletes a parent task together with its children.
// Without confirmation it refuses when any child is still live, reporting
// the count.
type DeleteParentTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewDeleteParentTaskUseCase creates a new DeleteParentTaskUseCase
func NewDeleteParentTaskUseCase(
	store appcore.EventStore,
	entries EntryReader,
	clk clock.Clock,
) *DeleteParentTaskUseCase {
	return &DeleteParentTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute deletes the parent, cascading to its children when confirmed
func (uc *DeleteParentTaskUseCase) Execute(ctx context.Context, cmd DeleteParentTaskCommand) (Result, error) {
	now := uc.clock.Now()

	parent, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}

	x := &cascadeExecutor{store: uc.store, entries: uc.entries}
	children, err := x.affectedChildren(ctx, parent.ID, func(entry.Entry) bool {
		// GetSubTasks already excludes deleted children
		return true
	})
	if err != nil {
		return Result{}, err
	}
	if len(children) > 0 && !cmd.Confirmed {
		return Result{}, appcore.NewNeedsConfirmationError("delete", len(children))
	}

	md := commandMetadata(cmd.UserID, now)
	batch, err := x.buildBatch(ctx, parent, children, func(id string, version int) event.DomainEvent {
		return entry.NewTaskDeleted(id, version, now, md)
	})
	if err != nil {
		return Result{}, err
	}
	if err = x.append(ctx, batch); err != nil {
		return Result{}, err
	}
	return Result{Events: batch}, nil
}
