package task

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

// MigrateTaskUseCase performs a bullet-journal migration: the original task
// becomes a strike-through reference and a copy becomes active in the
// target collection. Children are migrated in the same batch, each with its
// own copy nested under the parent's copy - even children that were already
// migrated elsewhere.
type MigrateTaskUseCase struct {
	appcore.BaseUseCase

	store   appcore.EventStore
	entries EntryReader
	clock   clock.Clock
}

// NewMigrateTaskUseCase creates a new MigrateTaskUseCase
func NewMigrateTaskUseCase(store appcore.EventStore, entries EntryReader, clk clock.Clock) *MigrateTaskUseCase {
	return &MigrateTaskUseCase{store: store, entries: entries, clock: clk}
}

// Execute migrates the task. Re-migrating to the same target returns the
// previously issued copy id and appends nothing; a different target is
// rejected.
func (uc *MigrateTaskUseCase) Execute(ctx context.Context, cmd MigrateTaskCommand) (MigrateResult, error) {
	now := uc.clock.Now()

	t, err := requireLiveTask(ctx, uc.entries, cmd.TaskID)
	if err != nil {
		return MigrateResult{}, err
	}
	if t.MigratedTo != "" {
		if t.MigratedToCollectionID == cmd.TargetCollectionID {
			return MigrateResult{MigratedToID: t.MigratedTo}, nil
		}
		return MigrateResult{}, fmt.Errorf("%w: task %s already migrated to %q",
			errs.ErrAlreadyMigrated, t.ID, t.MigratedToCollectionID)
	}

	children, err := uc.entries.GetSubTasks(ctx, t.ID)
	if err != nil {
		return MigrateResult{}, err
	}

	md := commandMetadata(cmd.UserID, now)
	copyID := uuid.NewUUID().String()

	batch := make([]event.DomainEvent, 0, len(children)+1)
	parentVersion, err := nextVersion(ctx, uc.store, t.ID)
	if err != nil {
		return MigrateResult{}, err
	}
	batch = append(batch, entry.NewTaskMigrated(
		t.ID, parentVersion, now, md,
		cmd.TargetCollectionID, t.LiveLocation(), copyID, "",
	))

	childMigrations := make(map[string]string, len(children))
	for _, c := range children {
		childCopyID := uuid.NewUUID().String()
		childMigrations[c.ID] = childCopyID
		version, vErr := nextVersion(ctx, uc.store, c.ID)
		if vErr != nil {
			return MigrateResult{}, vErr
		}
		batch = append(batch, entry.NewTaskMigrated(
			c.ID, version, now, md,
			cmd.TargetCollectionID, c.LiveLocation(), childCopyID, copyID,
		))
	}

	if len(batch) == 1 {
		err = uc.store.Append(ctx, batch[0])
	} else {
		err = uc.store.AppendBatch(ctx, batch)
	}
	if err != nil {
		return MigrateResult{}, fmt.Errorf("failed to append migration batch: %w", err)
	}

	return MigrateResult{
		Result:          Result{Events: batch},
		MigratedToID:    copyID,
		ChildMigrations: childMigrations,
	}, nil
}
