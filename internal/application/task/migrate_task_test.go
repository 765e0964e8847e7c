package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/application/task"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
)

func TestMigrateTaskUseCase_Basic(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	taskID := env.createTask(t, "Ship it", "col-A")
	useCase := task.NewMigrateTaskUseCase(env.store, env.entries, env.clock)

	// Act
	result, err := useCase.Execute(testContext(), task.MigrateTaskCommand{
		TaskID:             taskID,
		TargetCollectionID: "col-B",
	})

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, result.MigratedToID)
	require.Len(t, result.Events, 1)

	original := env.getTask(t, taskID)
	assert.Equal(t, result.MigratedToID, original.MigratedTo)
	assert.Equal(t, "col-B", original.MigratedToCollectionID)

	// the copy is an active task in the target with back-pointers
	copyTask := env.getTask(t, result.MigratedToID)
	assert.Equal(t, "Ship it", copyTask.Title)
	assert.Equal(t, taskID, copyTask.MigratedFrom)
	assert.Equal(t, "col-A", copyTask.MigratedFromCollectionID)
	assert.Equal(t, "col-B", copyTask.CollectionID)
	assert.Empty(t, copyTask.MigratedTo)
}

func TestMigrateTaskUseCase_Idempotency(t *testing.T) {
	env := newTestEnv(t)
	taskID := env.createTask(t, "again", "col-A")
	useCase := task.NewMigrateTaskUseCase(env.store, env.entries, env.clock)

	first, err := useCase.Execute(testContext(), task.MigrateTaskCommand{
		TaskID:             taskID,
		TargetCollectionID: "col-B",
	})
	require.NoError(t, err)
	eventsAfterFirst := env.store.Len()

	// same target: same copy id, no new event
	second, err := useCase.Execute(testContext(), task.MigrateTaskCommand{
		TaskID:             taskID,
		TargetCollectionID: "col-B",
	})
	require.NoError(t, err)
	assert.Equal(t, first.MigratedToID, second.MigratedToID)
	assert.Empty(t, second.Events)
	assert.Equal(t, eventsAfterFirst, env.store.Len())

	// different target: rejected
	_, err = useCase.Execute(testContext(), task.MigrateTaskCommand{
		TaskID:             taskID,
		TargetCollectionID: "col-C",
	})
	require.ErrorIs(t, err, errs.ErrAlreadyMigrated)
}

func TestMigrateTaskUseCase_CascadesToChildren(t *testing.T) {
	// Arrange: parent with two children, one already migrated elsewhere
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "col-A")
	childA := env.createSubTask(t, "a", parentID)
	childB := env.createSubTask(t, "b", parentID)

	useCase := task.NewMigrateTaskUseCase(env.store, env.entries, env.clock)
	_, err := useCase.Execute(testContext(), task.MigrateTaskCommand{
		TaskID:             childB,
		TargetCollectionID: "col-X",
	})
	require.NoError(t, err)

	// Act: migrate the parent; every current child follows, including the
	// one that was already migrated away
	result, err := useCase.Execute(testContext(), task.MigrateTaskCommand{
		TaskID:             parentID,
		TargetCollectionID: "col-B",
	})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Events, 3, "parent plus both children in one batch")
	require.Contains(t, result.ChildMigrations, childA)
	require.Contains(t, result.ChildMigrations, childB)

	// child copies nest under the parent's copy
	for _, childID := range []string{childA, childB} {
		copyTask := env.getTask(t, result.ChildMigrations[childID])
		assert.Equal(t, result.MigratedToID, copyTask.ParentEntryID)
		assert.Equal(t, "col-B", copyTask.CollectionID)
		assert.Equal(t, childID, copyTask.MigratedFrom)
	}
}
