package entry

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// CreateNoteUseCase handles the creation of a new note
type CreateNoteUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewCreateNoteUseCase creates a new CreateNoteUseCase
func NewCreateNoteUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *CreateNoteUseCase {
	return &CreateNoteUseCase{store: store, entries: entries, clock: clk}
}

// Execute creates the note and returns its id
func (uc *CreateNoteUseCase) Execute(ctx context.Context, cmd CreateNoteCommand) (CreateResult, error) {
	now := uc.clock.Now()

	content, err := entry.NormalizeContent(cmd.Content)
	if err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}
	order, err := appendOrder(ctx, uc.entries)
	if err != nil {
		return CreateResult{}, err
	}

	noteID := uuid.NewUUID().String()
	evt := entry.NewNoteCreated(
		noteID, 1, now,
		commandMetadata(cmd.UserID, now),
		content, cmd.CollectionID, order,
	)
	if err = uc.store.Append(ctx, evt); err != nil {
		return CreateResult{}, fmt.Errorf("failed to append note created: %w", err)
	}
	return CreateResult{
		Result:  Result{Events: []event.DomainEvent{evt}},
		EntryID: noteID,
	}, nil
}

// CreateEventUseCase handles the creation of a new journal event
type CreateEventUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewCreateEventUseCase creates a new CreateEventUseCase
func NewCreateEventUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *CreateEventUseCase {
	return &CreateEventUseCase{store: store, entries: entries, clock: clk}
}

// Execute creates the journal event and returns its id
func (uc *CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (CreateResult, error) {
	now := uc.clock.Now()

	content, err := entry.NormalizeContent(cmd.Content)
	if err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}
	if err = entry.ValidateEventDate(cmd.EventDate); err != nil {
		return CreateResult{}, fmt.Errorf("validation failed: %w", err)
	}
	order, err := appendOrder(ctx, uc.entries)
	if err != nil {
		return CreateResult{}, err
	}

	eventID := uuid.NewUUID().String()
	evt := entry.NewEventCreated(
		eventID, 1, now,
		commandMetadata(cmd.UserID, now),
		content, cmd.CollectionID, order, cmd.EventDate,
	)
	if err = uc.store.Append(ctx, evt); err != nil {
		return CreateResult{}, fmt.Errorf("failed to append event created: %w", err)
	}
	return CreateResult{
		Result:  Result{Events: []event.DomainEvent{evt}},
		EntryID: eventID,
	}, nil
}
