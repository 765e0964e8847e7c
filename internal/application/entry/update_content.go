package entry

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// UpdateNoteContentUseCase rewrites a note's content
type UpdateNoteContentUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewUpdateNoteContentUseCase creates a new UpdateNoteContentUseCase
func NewUpdateNoteContentUseCase(
	store appcore.EventStore,
	entries EntryReader,
	clk clock.Clock,
) *UpdateNoteContentUseCase {
	return &UpdateNoteContentUseCase{store: store, entries: entries, clock: clk}
}

// Execute updates the note content
func (uc *UpdateNoteContentUseCase) Execute(ctx context.Context, cmd UpdateNoteContentCommand) (Result, error) {
	now := uc.clock.Now()

	content, err := entry.NormalizeContent(cmd.Content)
	if err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}
	n, err := requireLiveKind(ctx, uc.entries, cmd.NoteID, entry.KindNote)
	if err != nil {
		return Result{}, err
	}

	version, err := nextVersion(ctx, uc.store, n.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewNoteContentChanged(n.ID, version, now, commandMetadata(cmd.UserID, now), content)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append note content change: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// UpdateEventContentUseCase rewrites a journal event's content
type UpdateEventContentUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewUpdateEventContentUseCase creates a new UpdateEventContentUseCase
func NewUpdateEventContentUseCase(
	store appcore.EventStore,
	entries EntryReader,
	clk clock.Clock,
) *UpdateEventContentUseCase {
	return &UpdateEventContentUseCase{store: store, entries: entries, clock: clk}
}

// Execute updates the event content
func (uc *UpdateEventContentUseCase) Execute(ctx context.Context, cmd UpdateEventContentCommand) (Result, error) {
	now := uc.clock.Now()

	content, err := entry.NormalizeContent(cmd.Content)
	if err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}
	e, err := requireLiveKind(ctx, uc.entries, cmd.EventID, entry.KindEvent)
	if err != nil {
		return Result{}, err
	}

	version, err := nextVersion(ctx, uc.store, e.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewEventContentChanged(e.ID, version, now, commandMetadata(cmd.UserID, now), content)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append event content change: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}

// SetEventDateUseCase changes or clears a journal event's date
type SetEventDateUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewSetEventDateUseCase creates a new SetEventDateUseCase
func NewSetEventDateUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *SetEventDateUseCase {
	return &SetEventDateUseCase{store: store, entries: entries, clock: clk}
}

// Execute sets the event date
func (uc *SetEventDateUseCase) Execute(ctx context.Context, cmd SetEventDateCommand) (Result, error) {
	now := uc.clock.Now()

	if err := entry.ValidateEventDate(cmd.EventDate); err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}
	e, err := requireLiveKind(ctx, uc.entries, cmd.EventID, entry.KindEvent)
	if err != nil {
		return Result{}, err
	}
	if e.EventDate == cmd.EventDate {
		return Result{}, nil
	}

	version, err := nextVersion(ctx, uc.store, e.ID)
	if err != nil {
		return Result{}, err
	}
	evt := entry.NewEventDateChanged(e.ID, version, now, commandMetadata(cmd.UserID, now), cmd.EventDate)
	if err = uc.store.Append(ctx, evt); err != nil {
		return Result{}, fmt.Errorf("failed to append event date change: %w", err)
	}
	return Result{Events: []event.DomainEvent{evt}}, nil
}
