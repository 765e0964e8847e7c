package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/application/task"
)

// S3: multi-collection membership with history and the orphan case.
func TestTaskCollectionMembership_AddRemoveOrphan(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	taskID := env.createTask(t, "T", "monthly-log")
	add := task.NewAddTaskToCollectionUseCase(env.store, env.entries, env.clock)
	remove := task.NewRemoveTaskFromCollectionUseCase(env.store, env.entries, env.clock)

	// Act
	_, err := add.Execute(testContext(), task.AddTaskToCollectionCommand{
		TaskID:       taskID,
		CollectionID: "daily-log",
	})
	require.NoError(t, err)
	_, err = remove.Execute(testContext(), task.RemoveTaskFromCollectionCommand{
		TaskID:       taskID,
		CollectionID: "monthly-log",
	})
	require.NoError(t, err)

	// Assert
	got := env.getTask(t, taskID)
	assert.Equal(t, []string{"daily-log"}, got.Collections)
	require.Len(t, got.CollectionHistory, 2)
	assert.Equal(t, "monthly-log", got.CollectionHistory[0].CollectionID)
	assert.NotNil(t, got.CollectionHistory[0].RemovedAt)
	assert.Equal(t, "daily-log", got.CollectionHistory[1].CollectionID)
	assert.Nil(t, got.CollectionHistory[1].RemovedAt)

	// removing the last membership leaves an orphan that stays retrievable
	_, err = remove.Execute(testContext(), task.RemoveTaskFromCollectionCommand{
		TaskID:       taskID,
		CollectionID: "daily-log",
	})
	require.NoError(t, err)

	orphan := env.getTask(t, taskID)
	assert.Empty(t, orphan.Collections)
	assert.Empty(t, orphan.CurrentCollections())
}

func TestAddTaskToCollectionUseCase_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	taskID := env.createTask(t, "T", "monthly-log")
	add := task.NewAddTaskToCollectionUseCase(env.store, env.entries, env.clock)

	// adding the collection the task already resides in appends nothing
	result, err := add.Execute(testContext(), task.AddTaskToCollectionCommand{
		TaskID:       taskID,
		CollectionID: "monthly-log",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Events)

	// a genuine add appends once, the repeat appends nothing
	_, err = add.Execute(testContext(), task.AddTaskToCollectionCommand{
		TaskID:       taskID,
		CollectionID: "daily-log",
	})
	require.NoError(t, err)
	before := env.store.Len()

	result, err = add.Execute(testContext(), task.AddTaskToCollectionCommand{
		TaskID:       taskID,
		CollectionID: "daily-log",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Events)
	assert.Equal(t, before, env.store.Len())
}

func TestRemoveTaskFromCollectionUseCase_NotMemberIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	taskID := env.createTask(t, "T", "monthly-log")
	remove := task.NewRemoveTaskFromCollectionUseCase(env.store, env.entries, env.clock)

	result, err := remove.Execute(testContext(), task.RemoveTaskFromCollectionCommand{
		TaskID:       taskID,
		CollectionID: "never-was-here",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Events)
}
