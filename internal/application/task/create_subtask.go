package task

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// CreateSubTaskUseCase creates a task nested under a parent task. Depth is
// limited to two levels: a sub-task may not parent another task.
type CreateSubTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewCreateSubTaskUseCase creates a new CreateSubTaskUseCase
func NewCreateSubTaskUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *CreateSubTaskUseCase {
	return &CreateSubTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute creates the sub-task and returns its id
func (uc *CreateSubTaskUseCase) Execute(ctx context.Context, cmd CreateSubTaskCommand) (CreateResult, error) {
	now := uc.clock.Now()

	title, err := entry.NormalizeTitle(cmd.Title)
	if err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}
	if cmd.ParentEntryID == "" {
		return CreateResult{}, appcore.NewValidationError("parentEntryId", "is required")
	}

	parent, err := requireLiveTask(ctx, uc.entries, cmd.ParentEntryID)
	if err != nil {
		return CreateResult{}, err
	}
	if parent.IsSubTask() {
		return CreateResult{}, fmt.Errorf("%w: %s is itself a sub-task", errs.ErrDepthExceeded, parent.ID)
	}

	lastOrder, err := uc.entries.LastEntryOrder(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to read entry order: %w", err)
	}
	order, err := fracindex.KeyBetween(lastOrder, "")
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to generate order key: %w", err)
	}

	// a sub-task is born into its parent's current collection
	taskID := uuid.NewUUID().String()
	evt := entry.NewTaskCreated(
		taskID, 1, now,
		commandMetadata(cmd.UserID, now),
		title, parent.LiveLocation(), order, parent.ID,
	)
	if err = uc.store.Append(ctx, evt); err != nil {
		return CreateResult{}, fmt.Errorf("failed to append sub-task created: %w", err)
	}

	return CreateResult{
		Result: Result{Events: []event.DomainEvent{evt}},
		TaskID: taskID,
	}, nil
}
