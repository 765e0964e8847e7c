package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/psychosledge/squickr-life/internal/domain/event"
)

func TestNewBaseEvent(t *testing.T) {
	at := time.Date(2026, 2, 1, 12, 0, 0, 123_456_789, time.UTC)
	md := event.NewMetadata("u1", "corr-1", at)

	base := event.NewBaseEvent("task.created", "agg-1", "Task", 1, at, md)

	assert.NotEmpty(t, base.EventID())
	assert.Equal(t, "task.created", base.EventType())
	assert.Equal(t, "agg-1", base.AggregateID())
	assert.Equal(t, "Task", base.AggregateType())
	assert.Equal(t, 1, base.Version())
	assert.Equal(t, "u1", base.Metadata().UserID)
	// timestamps carry millisecond precision
	assert.Equal(t, 123_000_000, base.OccurredAt().Nanosecond())
	assert.Equal(t, time.UTC, base.OccurredAt().Location())
}

func TestBaseEvent_UniqueIDs(t *testing.T) {
	at := time.Now()
	a := event.NewBaseEvent("x", "agg", "T", 1, at, event.Metadata{})
	b := event.NewBaseEvent("x", "agg", "T", 2, at, event.Metadata{})

	assert.NotEqual(t, a.EventID(), b.EventID())
}

func TestMetadata_WithCausation(t *testing.T) {
	md := event.NewMetadata("u1", "corr-1", time.Now())

	withCause := md.WithCausation("evt-9")

	assert.Equal(t, "evt-9", withCause.CausationID)
	assert.Empty(t, md.CausationID, "metadata is a value type")
}
