package task

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
)

// ReorderTaskUseCase places a task between two neighbor entries. Neighbors
// may be of any kind because every entry kind shares one order space.
type ReorderTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewReorderTaskUseCase creates a new ReorderTaskUseCase
func NewReorderTaskUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *ReorderTaskUseCase {
	return &ReorderTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute reorders the task. Reordering into the slot the task already
// occupies appends nothing.
func (uc *ReorderTaskUseCase) Execute(ctx context.Context, cmd ReorderTaskCommand) (Result, error) {
	now := uc.clock.Now()

	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return Result{}, err
	}

	var prevOrder, nextOrder string
	if cmd.PreviousEntryID != "" {
		prev, pErr := requireLiveEntry(ctx, uc.entries, cmd.PreviousEntryID)
		if pErr != nil {
			return Result{}, pErr
		}
		prevOrder = prev.Order
	}
	if cmd.NextEntryID != "" {
		next, nErr := requireLiveEntry(ctx, uc.entries, cmd.NextEntryID)
		if nErr != nil {
			return Result{}, nErr
		}
		nextOrder = next.Order
	}

	if orderWithin(t.Order, prevOrder, nextOrder) {
		return Result{}, nil
	}

	order, err := fracindex.KeyBetween(prevOrder, nextOrder)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate order key: %w", err)
	}

	version, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewTaskReordered(t.ID, version, now, commandMetadata(cmd.UserID, now), order)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append task reordered: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// orderWithin reports whether key already lies strictly between the bounds.
func orderWithin(key, prev, next string) bool {
	if key == "" {
		return false
	}
	if prev != "" && key <= prev {
		return false
	}
	if next != "" && key >= next {
		return false
	}
	return true
}
