package entry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

func at(minute int) time.Time {
	return time.Date(2026, 2, 1, 12, minute, 0, 0, time.UTC)
}

func TestEntry_FoldTaskLifecycle(t *testing.T) {
	e := entry.NewEntry("t1")

	e.Apply(entry.NewTaskCreated("t1", 1, at(0), event.Metadata{}, "write spec", "col-A", "a0", ""))
	require.Equal(t, entry.KindTask, e.Kind)
	assert.Equal(t, entry.StatusOpen, e.Status)
	assert.Equal(t, "col-A", e.CollectionID)
	assert.Equal(t, 1, e.Version)
	require.Len(t, e.CollectionHistory, 1)
	assert.Nil(t, e.CollectionHistory[0].RemovedAt)

	e.Apply(entry.NewTaskCompleted("t1", 2, at(1), event.Metadata{}))
	assert.Equal(t, entry.StatusCompleted, e.Status)
	require.NotNil(t, e.CompletedAt)

	e.Apply(entry.NewTaskReopened("t1", 3, at(2), event.Metadata{}))
	assert.Equal(t, entry.StatusOpen, e.Status)
	assert.Nil(t, e.CompletedAt)
	assert.Equal(t, 3, e.Version)
}

func TestEntry_FoldMoveClosesHistory(t *testing.T) {
	e := entry.NewEntry("t1")
	e.Apply(entry.NewTaskCreated("t1", 1, at(0), event.Metadata{}, "wander", "col-A", "a0", ""))

	e.Apply(entry.NewEntryMovedToCollection("t1", entry.KindTask, 2, at(5), event.Metadata{}, "col-B", "col-A"))

	assert.Equal(t, "col-B", e.CollectionID)
	assert.True(t, e.InCollection("col-B"))
	assert.False(t, e.InCollection("col-A"))
	assert.True(t, e.ResidedIn("col-A"))
	require.Len(t, e.CollectionHistory, 2)
	require.NotNil(t, e.CollectionHistory[0].RemovedAt)
	assert.Equal(t, at(5), *e.CollectionHistory[0].RemovedAt)
}

func TestEntry_FoldMultiCollectionAdoption(t *testing.T) {
	// the first membership event migrates the legacy residency into the list
	e := entry.NewEntry("t1")
	e.Apply(entry.NewTaskCreated("t1", 1, at(0), event.Metadata{}, "multi", "monthly-log", "a0", ""))

	e.Apply(entry.NewTaskAddedToCollection("t1", 2, at(1), event.Metadata{}, "daily-log"))
	assert.True(t, e.MultiManaged)
	assert.Equal(t, []string{"monthly-log", "daily-log"}, e.Collections)
	assert.Empty(t, e.CollectionID)

	e.Apply(entry.NewTaskRemovedFromCollection("t1", 3, at(2), event.Metadata{}, "monthly-log"))
	assert.Equal(t, []string{"daily-log"}, e.Collections)
	assert.False(t, e.InCollection("monthly-log"))

	// orphan: the empty list does not fall back to the legacy field
	e.Apply(entry.NewTaskRemovedFromCollection("t1", 4, at(3), event.Metadata{}, "daily-log"))
	assert.Empty(t, e.CurrentCollections())
	assert.Empty(t, e.LiveLocation())
}

func TestEntry_FoldMigrationPointers(t *testing.T) {
	e := entry.NewEntry("t1")
	e.Apply(entry.NewTaskCreated("t1", 1, at(0), event.Metadata{}, "migrate me", "col-A", "a0", ""))

	e.Apply(entry.NewTaskMigrated("t1", 2, at(1), event.Metadata{}, "col-B", "col-A", "copy-1", ""))

	assert.Equal(t, "copy-1", e.MigratedTo)
	assert.Equal(t, "col-B", e.MigratedToCollectionID)
	// the original stays resident in its source as a strike-through reference
	assert.True(t, e.ResidedIn("col-A"))
}

func TestNormalizeTitleAndContent(t *testing.T) {
	title, err := entry.NormalizeTitle("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", title)

	_, err = entry.NormalizeTitle(" \t\n ")
	require.Error(t, err)

	content, err := entry.NormalizeContent("  body  ")
	require.NoError(t, err)
	assert.Equal(t, "body", content)
}
