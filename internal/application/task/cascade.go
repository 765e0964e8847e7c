package task

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// cascadeExecutor builds the children-then-parent event batches shared by
// the parent completion and deletion commands. A batch is appended
// atomically so observers never see a parent changed without its children.
type cascadeExecutor struct {
	store   appcore.EventStore
	entries EntryReader
}

// affectedChildren returns the live children the cascade would touch.
func (x *cascadeExecutor) affectedChildren(
	ctx context.Context,
	parentID string,
	affected func(entry.Entry) bool,
) ([]entry.Entry, error) {
	children, err := x.entries.GetSubTasks(ctx, parentID)
	if err != nil {
		return nil, err
	}
	out := children[:0]
	for _, c := range children {
		if affected(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// buildBatch emits one event per affected child plus one for the parent.
func (x *cascadeExecutor) buildBatch(
	ctx context.Context,
	parent entry.Entry,
	children []entry.Entry,
	build func(id string, version int) event.DomainEvent,
) ([]event.DomainEvent, error) {
	batch := make([]event.DomainEvent, 0, len(children)+1)
	for _, c := range children {
		version, err := nextVersion(ctx, x.store, c.ID)
		if err != nil {
			return nil, err
		}
		batch = append(batch, build(c.ID, version))
	}
	version, err := nextVersion(ctx, x.store, parent.ID)
	if err != nil {
		return nil, err
	}
	batch = append(batch, build(parent.ID, version))
	return batch, nil
}

// append writes the batch, atomically when it holds more than one event.
func (x *cascadeExecutor) append(ctx context.Context, batch []event.DomainEvent) error {
	if len(batch) == 1 {
		if err := x.store.Append(ctx, batch[0]); err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}
		return nil
	}
	if err := x.store.AppendBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to append cascade batch: %w", err)
	}
	return nil
}
