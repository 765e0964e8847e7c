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

// ReopenTaskUseCase reverts a completed task to open
type ReopenTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewReopenTaskUseCase creates a new ReopenTaskUseCase
func NewReopenTaskUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *ReopenTaskUseCase {
	return &ReopenTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute reopens the task
func (uc *ReopenTaskUseCase) Execute(ctx context.Context, cmd ReopenTaskCommand) (Result, error) {
	now := uc.clock.Now()

	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}
	if t.Status != entry.StatusCompleted {
		return Result{}, fmt.Errorf("%w: task %s is not completed", errs.ErrInvalidTransition, t.ID)
	}

	version, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewTaskReopened(t.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append task reopened: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
