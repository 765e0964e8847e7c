package task

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// CompleteTaskUseCase completes a single open task
type CompleteTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewCompleteTaskUseCase creates a new CompleteTaskUseCase
func NewCompleteTaskUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *CompleteTaskUseCase {
	return &CompleteTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute completes the task
func (uc *CompleteTaskUseCase) Execute(ctx context.Context, cmd CompleteTaskCommand) (Result, error) {
	now := uc.clock.Now()

	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}
	if t.Status != entry.StatusOpen {
		return Result{}, fmt.Errorf("%w: task %s is already completed", errs.ErrInvalidTransition, t.ID)
	}

	version, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewTaskCompleted(t.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append task completed: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
