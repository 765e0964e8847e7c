package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/application/task"
)

func TestReorderTaskUseCase_MovesBetweenNeighbors(t *testing.T) {
	// Arrange: three tasks in creation order
	env := newTestEnv(t)
	first := env.createTask(t, "first", "")
	second := env.createTask(t, "second", "")
	third := env.createTask(t, "third", "")

	useCase := task.NewReorderTaskUseCase(env.store, env.entries, env.clock)

	// Act: move the third between the first and second
	result, err := useCase.Execute(testContext(), task.ReorderTaskCommand{
		TaskID:          third,
		PreviousEntryID: first,
		NextEntryID:     second,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Events, 1)

	a := env.getTask(t, first)
	b := env.getTask(t, second)
	c := env.getTask(t, third)
	assert.Greater(t, c.Order, a.Order)
	assert.Less(t, c.Order, b.Order)
}

func TestReorderTaskUseCase_IdempotentInSlot(t *testing.T) {
	env := newTestEnv(t)
	first := env.createTask(t, "first", "")
	second := env.createTask(t, "second", "")
	third := env.createTask(t, "third", "")
	before := env.store.Len()

	useCase := task.NewReorderTaskUseCase(env.store, env.entries, env.clock)
	result, err := useCase.Execute(testContext(), task.ReorderTaskCommand{
		TaskID:          second,
		PreviousEntryID: first,
		NextEntryID:     third,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Events, "already between its neighbors")
	assert.Equal(t, before, env.store.Len())
}

func TestReorderTaskUseCase_ToStart(t *testing.T) {
	env := newTestEnv(t)
	first := env.createTask(t, "first", "")
	second := env.createTask(t, "second", "")

	useCase := task.NewReorderTaskUseCase(env.store, env.entries, env.clock)
	_, err := useCase.Execute(testContext(), task.ReorderTaskCommand{
		TaskID:      second,
		NextEntryID: first,
	})

	require.NoError(t, err)
	assert.Less(t, env.getTask(t, second).Order, env.getTask(t, first).Order)
}
