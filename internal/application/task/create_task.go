package task

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// CreateTaskUseCase handles the creation of a new task
type CreateTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase
func NewCreateTaskUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *CreateTaskUseCase {
	return &CreateTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute creates the task and returns its id
func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (CreateResult, error) {
	now := uc.clock.Now()

	title, err := entry.NormalizeTitle(cmd.Title)
	if err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}
	createdAt := now
	if cmd.CreatedAt != nil {
		if err = appcore.ValidateNotFuture("createdAt", *cmd.CreatedAt, now); err != nil {
			return CreateResult{}, fmt.Errorf("validation failed: %w", err)
		}
		createdAt = cmd.CreatedAt.UTC()
	}

	// tasks share one order space with notes and events
	lastOrder, err := uc.entries.LastEntryOrder(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to read entry order: %w", err)
	}
	order, err := fracindex.KeyBetween(lastOrder, "")
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to generate order key: %w", err)
	}

	taskID := uuid.NewUUID().String()
	evt := entry.NewTaskCreated(
		taskID, 1, createdAt,
		commandMetadata(cmd.UserID, now),
		title, cmd.CollectionID, order, "",
	)
	if err = uc.store.Append(ctx, evt); err != nil {
		return CreateResult{}, fmt.Errorf("failed to append task created: %w", err)
	}

	return CreateResult{
		Result: Result{Events: []event.DomainEvent{evt}},
		TaskID: taskID,
	}, nil
}
