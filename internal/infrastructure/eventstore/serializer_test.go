package eventstore_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventstore"
)

func TestEventSerializer_RoundTripTaskMigrated(t *testing.T) {
	// Arrange
	serializer := eventstore.NewEventSerializer()
	original := entry.NewTaskMigrated(
		"aggregate-1", 3, testTime(),
		event.Metadata{UserID: "u1", CorrelationID: "c1", Timestamp: testTime()},
		"col-B", "col-A", "copy-1", "parent-copy-1",
	)

	// Act
	env, err := serializer.Serialize(original)
	require.NoError(t, err)
	restored, err := serializer.Deserialize(env)
	require.NoError(t, err)

	// Assert
	migrated, ok := restored.(*entry.TaskMigrated)
	require.True(t, ok)
	assert.Equal(t, original.EventID(), migrated.EventID())
	assert.Equal(t, entry.EventTypeTaskMigrated, migrated.EventType())
	assert.Equal(t, "aggregate-1", migrated.AggregateID())
	assert.Equal(t, 3, migrated.Version())
	assert.Equal(t, "col-B", migrated.TargetCollectionID)
	assert.Equal(t, "col-A", migrated.SourceCollectionID)
	assert.Equal(t, "copy-1", migrated.MigratedToID)
	assert.Equal(t, "parent-copy-1", migrated.NewParentID)
	assert.Equal(t, "u1", migrated.Metadata().UserID)
	assert.True(t, original.OccurredAt().Equal(migrated.OccurredAt()))
}

func TestEventSerializer_CanonicalShape(t *testing.T) {
	serializer := eventstore.NewEventSerializer()
	created := entry.NewTaskCreated("agg-1", 1, testTime(), event.Metadata{}, "Buy milk", "col-A", "a0", "")

	env, err := serializer.Serialize(created)
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "task.created", decoded["type"])
	assert.Equal(t, "agg-1", decoded["aggregateId"])
	assert.InDelta(t, 1, decoded["version"], 0)
	assert.Equal(t, "2026-02-01T12:00:00.000Z", decoded["timestamp"])

	payload, ok := decoded["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", payload["title"])
	assert.Equal(t, "col-A", payload["collectionId"])
	assert.Equal(t, "a0", payload["order"])
	// base fields live in the envelope, not the payload
	assert.NotContains(t, payload, "aggregate_id")
	assert.NotContains(t, payload, "version")
}

func TestEventSerializer_RoundTripCollectionSettings(t *testing.T) {
	serializer := eventstore.NewEventSerializer()
	legacy := true
	original := collection.NewSettingsUpdated("col-1", 2, testTime(), event.Metadata{},
		collection.Settings{CollapseCompleted: &legacy},
	)

	env, err := serializer.Serialize(original)
	require.NoError(t, err)
	restored, err := serializer.Deserialize(env)
	require.NoError(t, err)

	updated, ok := restored.(*collection.SettingsUpdated)
	require.True(t, ok)
	require.NotNil(t, updated.Settings.CollapseCompleted)
	assert.True(t, *updated.Settings.CollapseCompleted)
	// the legacy boolean survives the log untouched
	assert.Nil(t, updated.Settings.CompletedTaskBehavior)
	assert.Equal(t, collection.BehaviorCollapse, updated.Settings.Resolve())
}

func TestEventSerializer_UnknownTypeRejected(t *testing.T) {
	serializer := eventstore.NewEventSerializer()

	_, err := serializer.Deserialize(&eventstore.Envelope{Type: "task.exploded"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type")
}

func TestEventSerializer_ToleratesRFC3339Timestamps(t *testing.T) {
	serializer := eventstore.NewEventSerializer()
	env := &eventstore.Envelope{
		ID:            "e1",
		Type:          entry.EventTypeTaskReopened,
		AggregateID:   "agg-1",
		AggregateType: "Task",
		Version:       2,
		Timestamp:     time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}

	restored, err := serializer.Deserialize(env)

	require.NoError(t, err)
	assert.True(t, restored.OccurredAt().Equal(testTime()))
}
