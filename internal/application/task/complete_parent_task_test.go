package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/application/task"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
)

func TestCompleteParentTaskUseCase_NeedsConfirmation(t *testing.T) {
	// Arrange: two open children, one already completed
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "")
	env.createSubTask(t, "a", parentID)
	env.createSubTask(t, "b", parentID)
	doneID := env.createSubTask(t, "done", parentID)
	complete := task.NewCompleteTaskUseCase(env.store, env.entries, env.clock)
	_, err := complete.Execute(testContext(), task.CompleteTaskCommand{TaskID: doneID})
	require.NoError(t, err)

	useCase := task.NewCompleteParentTaskUseCase(env.store, env.entries, env.clock)

	// Act: unconfirmed
	_, err = useCase.Execute(testContext(), task.CompleteParentTaskCommand{TaskID: parentID})

	// Assert: the error carries the incomplete child count
	nc, ok := appcore.AsNeedsConfirmation(err)
	require.True(t, ok, "expected needs-confirmation, got %v", err)
	assert.Equal(t, 2, nc.Children)

	// nothing was appended by the refused command
	events, err := env.store.GetByID(testContext(), parentID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestCompleteParentTaskUseCase_ConfirmedCascade(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "")
	childA := env.createSubTask(t, "a", parentID)
	childB := env.createSubTask(t, "b", parentID)

	useCase := task.NewCompleteParentTaskUseCase(env.store, env.entries, env.clock)

	// Act
	result, err := useCase.Execute(testContext(), task.CompleteParentTaskCommand{
		TaskID:    parentID,
		Confirmed: true,
	})

	// Assert: one batch of children plus parent
	require.NoError(t, err)
	assert.Len(t, result.Events, 3)
	for _, id := range []string{parentID, childA, childB} {
		got := env.getTask(t, id)
		assert.Equal(t, entry.StatusCompleted, got.Status, "task %s", id)
		assert.NotNil(t, got.CompletedAt)
	}
}

func TestCompleteParentTaskUseCase_AllChildrenComplete(t *testing.T) {
	// with every child already complete it behaves as a plain complete
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "")
	childID := env.createSubTask(t, "a", parentID)
	complete := task.NewCompleteTaskUseCase(env.store, env.entries, env.clock)
	_, err := complete.Execute(testContext(), task.CompleteTaskCommand{TaskID: childID})
	require.NoError(t, err)

	useCase := task.NewCompleteParentTaskUseCase(env.store, env.entries, env.clock)
	result, err := useCase.Execute(testContext(), task.CompleteParentTaskCommand{TaskID: parentID})

	require.NoError(t, err)
	assert.Len(t, result.Events, 1)
	assert.Equal(t, entry.StatusCompleted, env.getTask(t, parentID).Status)
}

func TestDeleteParentTaskUseCase_Cascade(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "")
	childA := env.createSubTask(t, "a", parentID)
	childB := env.createSubTask(t, "b", parentID)

	useCase := task.NewDeleteParentTaskUseCase(env.store, env.entries, env.clock)

	// Act: unconfirmed first
	_, err := useCase.Execute(testContext(), task.DeleteParentTaskCommand{TaskID: parentID})
	nc, ok := appcore.AsNeedsConfirmation(err)
	require.True(t, ok)
	assert.Equal(t, 2, nc.Children)

	// Act: confirmed
	result, err := useCase.Execute(testContext(), task.DeleteParentTaskCommand{
		TaskID:    parentID,
		Confirmed: true,
	})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Events, 3)
	for _, id := range []string{parentID, childA, childB} {
		got, found, gErr := env.entries.GetEntryByID(testContext(), id)
		require.NoError(t, gErr)
		require.True(t, found)
		assert.True(t, got.Deleted, "task %s", id)
	}

	tasks, err := env.entries.GetTasks(testContext())
	require.NoError(t, err)
	assert.Empty(t, tasks, "deleted tasks leave the views")
}
