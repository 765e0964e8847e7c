package entry

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
)

// ReorderNoteUseCase places a note between two neighbor entries of any kind
type ReorderNoteUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewReorderNoteUseCase creates a new ReorderNoteUseCase
func NewReorderNoteUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *ReorderNoteUseCase {
	return &ReorderNoteUseCase{store: store, entries: entries, clock: clk}
}

// Execute reorders the note; reordering into its current slot appends nothing
func (uc *ReorderNoteUseCase) Execute(ctx context.Context, cmd ReorderNoteCommand) (Result, error) {
	now := uc.clock.Now()

	n, err := requireLiveKind(ctx, uc.entries, cmd.NoteID, entry.KindNote)
	if err != nil {
		return Result{}, err
	}
	prevOrder, nextOrder, err := neighborOrders(ctx, uc.entries, cmd.PreviousEntryID, cmd.NextEntryID)
	if err != nil {
		return Result{}, err
	}
	if orderWithin(n.Order, prevOrder, nextOrder) {
		return Result{}, nil
	}

	order, err := fracindex.KeyBetween(prevOrder, nextOrder)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate order key: %w", err)
	}
	version, err := nextVersion(ctx, uc.store, n.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewNoteReordered(n.ID, version, now, commandMetadata(cmd.UserID, now), order)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append note reordered: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// ReorderEventUseCase places a journal event between two neighbor entries
type ReorderEventUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewReorderEventUseCase creates a new ReorderEventUseCase
func NewReorderEventUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *ReorderEventUseCase {
	return &ReorderEventUseCase{store: store, entries: entries, clock: clk}
}

// Execute reorders the event; reordering into its current slot appends nothing
func (uc *ReorderEventUseCase) Execute(ctx context.Context, cmd ReorderEventCommand) (Result, error) {
	now := uc.clock.Now()

	e, err := requireLiveKind(ctx, uc.entries, cmd.EventID, entry.KindEvent)
	if err != nil {
		return Result{}, err
	}
	prevOrder, nextOrder, err := neighborOrders(ctx, uc.entries, cmd.PreviousEntryID, cmd.NextEntryID)
	if err != nil {
		return Result{}, err
	}
	if orderWithin(e.Order, prevOrder, nextOrder) {
		return Result{}, nil
	}

	order, err := fracindex.KeyBetween(prevOrder, nextOrder)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate order key: %w", err)
	}
	version, err := nextVersion(ctx, uc.store, e.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewEventReordered(e.ID, version, now, commandMetadata(cmd.UserID, now), order)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append event reordered: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
