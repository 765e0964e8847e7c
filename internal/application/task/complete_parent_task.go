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

// CompleteParentTaskUseCase completes a parent task together with its
// incomplete children. Without confirmation it refuses when any child is
// still open, reporting the count.
type CompleteParentTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewCompleteParentTaskUseCase creates a new CompleteParentTaskUseCase
func NewCompleteParentTaskUseCase(
	store appcore.EventStore,
	entries EntryReader,
	clk clock.Clock,
) *CompleteParentTaskUseCase {
	return &CompleteParentTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute completes the parent, cascading to incomplete children when
// confirmed
func (uc *CompleteParentTaskUseCase) Execute(ctx context.Context, cmd CompleteParentTaskCommand) (Result, error) {
	now := uc.clock.Now()

	parent, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}
	if parent.Status != entry.StatusOpen {
		return Result{}, fmt.Errorf("%w: task %s is already completed", errs.ErrInvalidTransition, parent.ID)
	}

	x := &cascadeExecutor{store: uc.store, entries: uc.entries}
	incomplete, err := x.affectedChildren(ctx, parent.ID, func(c entry.Entry) bool {
		return c.Status == entry.StatusOpen
	})
	if err != nil {
		return Result{}, err
	}
	if len(incomplete) > 0 && !cmd.Confirmed {
		return Result{}, appcore.NewNeedsConfirmationError("complete", len(incomplete))
	}

	md := commandMetadata(cmd.UserID, now)
	batch, err := x.buildBatch(ctx, parent, incomplete, func(id string, version int) event.DomainEvent {
		return entry.NewTaskCompleted(id, version, now, md)
	})
	if err != nil {
		return Result{}, err
	}
	if err = x.append(ctx, batch); err != nil {
		return Result{}, err
	}
	return Result{Events: batch}, nil
}
