package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/application/task"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventstore"
	"github.com/psychosledge/squickr-life/internal/projection"
)

func testContext() context.Context {
	return context.Background()
}

// testEnv wires a real in-memory store and the entry projection the way the
// container does, with a pinned clock.
type testEnv struct {
	store   *eventstore.InMemoryEventStore
	entries *projection.EntryList
	clock   *clock.Fixed
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := eventstore.NewInMemoryEventStore()
	entries := projection.NewEntryList(store, nil)
	t.Cleanup(entries.Close)
	return &testEnv{
		store:   store,
		entries: entries,
		clock:   clock.NewFixed(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)),
	}
}

func (e *testEnv) createTask(t *testing.T, title, collectionID string) string {
	t.Helper()
	uc := task.NewCreateTaskUseCase(e.store, e.entries, e.clock)
	result, err := uc.Execute(testContext(), task.CreateTaskCommand{Title: title, CollectionID: collectionID})
	require.NoError(t, err)
	return result.TaskID
}

func (e *testEnv) createSubTask(t *testing.T, title, parentID string) string {
	t.Helper()
	uc := task.NewCreateSubTaskUseCase(e.store, e.entries, e.clock)
	result, err := uc.Execute(testContext(), task.CreateSubTaskCommand{Title: title, ParentEntryID: parentID})
	require.NoError(t, err)
	return result.TaskID
}

func (e *testEnv) getTask(t *testing.T, id string) entry.Entry {
	t.Helper()
	got, ok, err := e.entries.GetTaskByID(testContext(), id)
	require.NoError(t, err)
	require.True(t, ok, "task %s not found", id)
	return got
}
