package eventstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventstore"
)

func newBoltStore(t *testing.T) *eventstore.BoltEventStore {
	t.Helper()
	store, err := eventstore.NewBoltEventStore(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltEventStore_RoundTrip(t *testing.T) {
	// Arrange
	store := newBoltStore(t)
	idA := uuid.NewUUID().String()
	idB := uuid.NewUUID().String()

	// Act
	require.NoError(t, store.Append(testContext(), newTaskCreated(idA, 1)))
	require.NoError(t, store.AppendBatch(testContext(), []event.DomainEvent{
		newTaskCreated(idB, 1),
		entry.NewTaskCompleted(idA, 2, testTime(), event.Metadata{}),
	}))

	// Assert: global order and per-aggregate order survive the disk
	all, err := store.GetAll(testContext())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, idA, all[0].AggregateID())
	assert.Equal(t, idB, all[1].AggregateID())
	assert.Equal(t, entry.EventTypeTaskCompleted, all[2].EventType())

	forA, err := store.GetByID(testContext(), idA)
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, 1, forA[0].Version())
	assert.Equal(t, 2, forA[1].Version())

	forUnknown, err := store.GetByID(testContext(), "missing")
	require.NoError(t, err)
	assert.Empty(t, forUnknown)
}

func TestBoltEventStore_BatchIsAtomic(t *testing.T) {
	store := newBoltStore(t)
	idA := uuid.NewUUID().String()
	idB := uuid.NewUUID().String()

	err := store.AppendBatch(testContext(), []event.DomainEvent{
		newTaskCreated(idA, 1),
		newTaskCreated(idB, 2), // conflicts: new aggregates start at 1
	})

	require.ErrorIs(t, err, appcore.ErrVersionConflict)
	all, getErr := store.GetAll(testContext())
	require.NoError(t, getErr)
	assert.Empty(t, all)
}

func TestBoltEventStore_RejectsVersionGap(t *testing.T) {
	store := newBoltStore(t)
	id := uuid.NewUUID().String()
	require.NoError(t, store.Append(testContext(), newTaskCreated(id, 1)))

	err := store.Append(testContext(), entry.NewTaskCompleted(id, 5, testTime(), event.Metadata{}))

	require.ErrorIs(t, err, appcore.ErrVersionConflict)
}

func TestBoltEventStore_NotifiesSubscribers(t *testing.T) {
	store := newBoltStore(t)
	notifications := 0
	unsubscribe := store.Subscribe(func() { notifications++ })
	defer unsubscribe()

	id := uuid.NewUUID().String()
	require.NoError(t, store.Append(testContext(), newTaskCreated(id, 1)))
	require.NoError(t, store.AppendBatch(testContext(), []event.DomainEvent{
		entry.NewTaskCompleted(id, 2, testTime(), event.Metadata{}),
		entry.NewTaskReopened(id, 3, testTime(), event.Metadata{}),
	}))

	assert.Equal(t, 2, notifications)
}
