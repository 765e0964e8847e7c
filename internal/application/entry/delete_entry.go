package entry

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// DeleteNoteUseCase soft-deletes a note
type DeleteNoteUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewDeleteNoteUseCase creates a new DeleteNoteUseCase
func NewDeleteNoteUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{store: store, entries: entries, clock: clk}
}

// Execute deletes the note
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, cmd DeleteNoteCommand) (Result, error) {
	now := uc.clock.Now()

	n, err := requireLiveKind(ctx, uc.entries, cmd.NoteID, entry.KindNote)
	if err != nil {
		return Result{}, err
	}
	version, err := nextVersion(ctx, uc.store, n.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewNoteDeleted(n.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append note deleted: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// DeleteEventUseCase soft-deletes a journal event
type DeleteEventUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewDeleteEventUseCase creates a new DeleteEventUseCase
func NewDeleteEventUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *DeleteEventUseCase {
	return &DeleteEventUseCase{store: store, entries: entries, clock: clk}
}

// Execute deletes the journal event
func (uc *DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) (Result, error) {
	now := uc.clock.Now()

	e, err := requireLiveKind(ctx, uc.entries, cmd.EventID, entry.KindEvent)
	if err != nil {
		return Result{}, err
	}
	version, err := nextVersion(ctx, uc.store, e.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewEventDeleted(e.ID, version, now, commandMetadata(cmd.UserID, now))
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append event deleted: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
