package task

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// UpdateTaskTitleUseCase renames a task
type UpdateTaskTitleUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewUpdateTaskTitleUseCase creates a new UpdateTaskTitleUseCase
func NewUpdateTaskTitleUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *UpdateTaskTitleUseCase {
	return &UpdateTaskTitleUseCase{store: store, entries: entries, clock: clk}
}

// Execute updates the title
func (uc *UpdateTaskTitleUseCase) Execute(ctx context.Context, cmd UpdateTaskTitleCommand) (Result, error) {
	now := uc.clock.Now()

	title, err := entry.NormalizeTitle(cmd.Title)
	if err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}

	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}

	version, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewTaskTitleChanged(t.ID, version, now, commandMetadata(cmd.UserID, now), title)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append title change: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
