package entry

import (
	"context"
	"fmt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
)

// MigrateNoteUseCase migrates a note in the bullet-journal sense. Notes
// have no children, so there is never a cascade.
type MigrateNoteUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewMigrateNoteUseCase creates a new MigrateNoteUseCase
func NewMigrateNoteUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *MigrateNoteUseCase {
	return &MigrateNoteUseCase{store: store, entries: entries, clock: clk}
}

// Execute migrates the note; same-target re-migration returns the existing
// copy id, a different target is rejected
func (uc *MigrateNoteUseCase) Execute(ctx context.Context, cmd MigrateNoteCommand) (MigrateResult, error) {
	now := uc.clock.Now()

	n, err := requireLiveKind(ctx, uc.entries, cmd.NoteID, entry.KindNote)
	if err != nil {
		return MigrateResult{}, err
	}
	if n.MigratedTo != "" {
		if n.MigratedToCollectionID == cmd.TargetCollectionID {
			return MigrateResult{MigratedToID: n.MigratedTo}, nil
		}
		return MigrateResult{}, fmt.Errorf("%w: note %s already migrated to %q",
			errs.ErrAlreadyMigrated, n.ID, n.MigratedToCollectionID)
	}

	version, err := nextVersion(ctx, uc.store, n.ID)
	if err != nil {
		return MigrateResult{}, err
	}
	copyID := uuid.NewUUID().String()
	evt := entry.NewNoteMigrated(
		n.ID, version, now, commandMetadata(cmd.UserID, now),
		cmd.TargetCollectionID, n.LiveLocation(), copyID,
	)
	if err = uc.store.Append(ctx, evt); err != nil {
		return MigrateResult{}, fmt.Errorf("failed to append note migrated: %w", err)
	}
	return MigrateResult{
		Result:       Result{Events: []event.DomainEvent{evt}},
		MigratedToID: copyID,
	}, nil
}

// MigrateEventUseCase migrates a journal event in the bullet-journal sense
type MigrateEventUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewMigrateEventUseCase creates a new MigrateEventUseCase
func NewMigrateEventUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *MigrateEventUseCase {
	return &MigrateEventUseCase{store: store, entries: entries, clock: clk}
}

// Execute migrates the event; same-target re-migration returns the existing
// copy id, a different target is rejected
func (uc *MigrateEventUseCase) Execute(ctx context.Context, cmd MigrateEventCommand) (MigrateResult, error) {
	now := uc.clock.Now()

	e, err := requireLiveKind(ctx, uc.entries, cmd.EventID, entry.KindEvent)
	if err != nil {
		return MigrateResult{}, err
	}
	if e.MigratedTo != "" {
		if e.MigratedToCollectionID == cmd.TargetCollectionID {
			return MigrateResult{MigratedToID: e.MigratedTo}, nil
		}
		return MigrateResult{}, fmt.Errorf("%w: event %s already migrated to %q",
			errs.ErrAlreadyMigrated, e.ID, e.MigratedToCollectionID)
	}

	version, err := nextVersion(ctx, uc.store, e.ID)
	if err != nil {
		return MigrateResult{}, err
	}
	copyID := uuid.NewUUID().String()
	evt := entry.NewEventMigrated(
		e.ID, version, now, commandMetadata(cmd.UserID, now),
		cmd.TargetCollectionID, e.LiveLocation(), copyID,
	)
	if err = uc.store.Append(ctx, evt); err != nil {
		return MigrateResult{}, fmt.Errorf("failed to append event migrated: %w", err)
	}
	return MigrateResult{
		Result:       Result{Events: []event.DomainEvent{evt}},
		MigratedToID: copyID,
	}, nil
}
