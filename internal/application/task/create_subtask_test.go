package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/application/task"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
)

func TestCreateSubTaskUseCase_InheritsParentCollection(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "work-projects")

	// Act
	subID := env.createSubTask(t, "child", parentID)

	// Assert
	sub := env.getTask(t, subID)
	assert.Equal(t, parentID, sub.ParentEntryID)
	assert.Equal(t, "work-projects", sub.CollectionID)
	assert.True(t, sub.IsSubTask())

	children, err := env.entries.GetSubTasks(testContext(), parentID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, subID, children[0].ID)
}

// S6: the sub-task depth limit is two levels.
func TestCreateSubTaskUseCase_DepthLimit(t *testing.T) {
	env := newTestEnv(t)
	parentID := env.createTask(t, "parent", "")
	subID := env.createSubTask(t, "child", parentID)

	useCase := task.NewCreateSubTaskUseCase(env.store, env.entries, env.clock)
	_, err := useCase.Execute(testContext(), task.CreateSubTaskCommand{
		Title:         "grandchild",
		ParentEntryID: subID,
	})

	require.ErrorIs(t, err, errs.ErrDepthExceeded)
}

func TestCreateSubTaskUseCase_ParentMustBeTask(t *testing.T) {
	env := newTestEnv(t)
	useCase := task.NewCreateSubTaskUseCase(env.store, env.entries, env.clock)

	_, err := useCase.Execute(testContext(), task.CreateSubTaskCommand{
		Title:         "orphaned",
		ParentEntryID: "missing-parent",
	})

	require.ErrorIs(t, err, appcore.ErrNotFound)
}
