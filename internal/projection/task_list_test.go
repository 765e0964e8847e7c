package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appentry "github.com/psychosledge/squickr-life/internal/application/entry"
	"github.com/psychosledge/squickr-life/internal/projection"
)

func TestTaskList_FoldsOnlyTaskEvents(t *testing.T) {
	// Arrange: a task and a note in the same log
	env := newTestEnv(t)
	taskID := env.createTask(t, "a task", "col-A")
	noteUC := appentry.NewCreateNoteUseCase(env.store, env.entries, env.clock)
	_, err := noteUC.Execute(testContext(), appentry.CreateNoteCommand{Content: "a note"})
	require.NoError(t, err)

	tasks := projection.NewTaskList(env.store, nil)
	t.Cleanup(tasks.Close)

	// Act
	got, err := tasks.GetTasks(testContext())

	// Assert: only the task shows up
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, taskID, got[0].ID)

	byID, ok, err := tasks.GetTaskByID(testContext(), taskID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a task", byID.Title)
}

func TestTaskList_FindsMigratedCopy(t *testing.T) {
	env := newTestEnv(t)
	taskID := env.createTask(t, "movable", "col-A")
	result := env.migrateTask(t, taskID, "col-B")

	tasks := projection.NewTaskList(env.store, nil)
	t.Cleanup(tasks.Close)

	copyTask, ok, err := tasks.GetTaskByID(testContext(), result.MigratedToID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, taskID, copyTask.MigratedFrom)

	original, ok, err := tasks.GetTaskByID(testContext(), taskID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, result.MigratedToID, original.MigratedTo)
}

func TestTaskList_SubTasksInOrder(t *testing.T) {
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "")
	first := env.createSubTask(t, "first", parentID)
	second := env.createSubTask(t, "second", parentID)

	tasks := projection.NewTaskList(env.store, nil)
	t.Cleanup(tasks.Close)

	children, err := tasks.GetSubTasks(testContext(), parentID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, first, children[0].ID)
	assert.Equal(t, second, children[1].ID)
}
