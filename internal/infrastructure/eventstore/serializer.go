package eventstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// timestampLayout is ISO-8601 UTC with millisecond precision, the canonical
// on-disk timestamp format.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Envelope is the canonical persisted shape of a domain event.
type Envelope struct {
	ID            string          `json:"id"             bson:"id"`
	Type          string          `json:"type"           bson:"type"`
	AggregateID   string          `json:"aggregateId"    bson:"aggregate_id"`
	AggregateType string          `json:"aggregateType"  bson:"aggregate_type"`
	Version       int             `json:"version"        bson:"version"`
	Timestamp     string          `json:"timestamp"      bson:"timestamp"`
	Metadata      event.Metadata  `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Payload       json.RawMessage `json:"payload"        bson:"payload"`

	// Seq is the global sequence position, used by stores that cannot rely
	// on physical insertion order. It is not part of the canonical shape.
	Seq uint64 `json:"-" bson:"seq,omitempty"`
}

// EventSerializer converts domain events to and from canonical envelopes.
type EventSerializer struct{}

// NewEventSerializer creates an event serializer
func NewEventSerializer() *EventSerializer {
	return &EventSerializer{}
}

// Serialize converts a domain event into its canonical envelope. The
// concrete event struct marshals to the payload alone; the base fields go
// into the envelope.
func (s *EventSerializer) Serialize(e event.DomainEvent) (*Envelope, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return &Envelope{
		ID:            e.EventID(),
		Type:          e.EventType(),
		AggregateID:   e.AggregateID(),
		AggregateType: e.AggregateType(),
		Version:       e.Version(),
		Timestamp:     e.OccurredAt().UTC().Format(timestampLayout),
		Metadata:      e.Metadata(),
		Payload:       payload,
	}, nil
}

// SerializeMany converts several events at once
func (s *EventSerializer) SerializeMany(events []event.DomainEvent) ([]*Envelope, error) {
	envelopes := make([]*Envelope, 0, len(events))
	for i, e := range events {
		env, err := s.Serialize(e)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event at index %d: %w", i, err)
		}
		envelopes = append(envelopes, env)
	}
	return envelopes, nil
}

// Deserialize reconstructs a domain event from its canonical envelope.
func (s *EventSerializer) Deserialize(env *Envelope) (event.DomainEvent, error) {
	evt, err := createEventByType(env.Type)
	if err != nil {
		return nil, err
	}
	if len(env.Payload) > 0 {
		if err = json.Unmarshal(env.Payload, evt); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
	}
	occurredAt, err := time.Parse(timestampLayout, env.Timestamp)
	if err != nil {
		// tolerate full RFC3339 timestamps from other writers
		occurredAt, err = time.Parse(time.RFC3339Nano, env.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp %q: %w", env.Timestamp, err)
		}
	}
	base := event.BaseEvent{
		EID:           env.ID,
		EType:         env.Type,
		AggID:         env.AggregateID,
		AggType:       env.AggregateType,
		OccAt:         occurredAt.UTC(),
		Ver:           env.Version,
		EventMetadata: env.Metadata,
	}
	setBaseEvent(evt, base)
	return evt, nil
}

// DeserializeMany reconstructs several events in order
func (s *EventSerializer) DeserializeMany(envelopes []*Envelope) ([]event.DomainEvent, error) {
	events := make([]event.DomainEvent, 0, len(envelopes))
	for i, env := range envelopes {
		evt, err := s.Deserialize(env)
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize event at index %d: %w", i, err)
		}
		events = append(events, evt)
	}
	return events, nil
}

// createEventByType creates an empty event instance by event type.
func createEventByType(eventType string) (event.DomainEvent, error) {
	switch eventType {
	// Task events
	case entry.EventTypeTaskCreated:
		return &entry.TaskCreated{}, nil
	case entry.EventTypeTaskCompleted:
		return &entry.TaskCompleted{}, nil
	case entry.EventTypeTaskReopened:
		return &entry.TaskReopened{}, nil
	case entry.EventTypeTaskTitleChanged:
		return &entry.TaskTitleChanged{}, nil
	case entry.EventTypeTaskDeleted:
		return &entry.TaskDeleted{}, nil
	case entry.EventTypeTaskReordered:
		return &entry.TaskReordered{}, nil
	case entry.EventTypeTaskMigrated:
		return &entry.TaskMigrated{}, nil
	case entry.EventTypeTaskAddedToCollection:
		return &entry.TaskAddedToCollection{}, nil
	case entry.EventTypeTaskRemovedFromCollection:
		return &entry.TaskRemovedFromCollection{}, nil
	// Note events
	case entry.EventTypeNoteCreated:
		return &entry.NoteCreated{}, nil
	case entry.EventTypeNoteContentChanged:
		return &entry.NoteContentChanged{}, nil
	case entry.EventTypeNoteDeleted:
		return &entry.NoteDeleted{}, nil
	case entry.EventTypeNoteReordered:
		return &entry.NoteReordered{}, nil
	case entry.EventTypeNoteMigrated:
		return &entry.NoteMigrated{}, nil
	// Journal event events
	case entry.EventTypeEventCreated:
		return &entry.EventCreated{}, nil
	case entry.EventTypeEventContentChanged:
		return &entry.EventContentChanged{}, nil
	case entry.EventTypeEventDateChanged:
		return &entry.EventDateChanged{}, nil
	case entry.EventTypeEventDeleted:
		return &entry.EventDeleted{}, nil
	case entry.EventTypeEventReordered:
		return &entry.EventReordered{}, nil
	case entry.EventTypeEventMigrated:
		return &entry.EventMigrated{}, nil
	// Cross-kind entry events
	case entry.EventTypeEntryMovedToCollection:
		return &entry.EntryMovedToCollection{}, nil
	// Collection events
	case collection.EventTypeCreated:
		return &collection.Created{}, nil
	case collection.EventTypeRenamed:
		return &collection.Renamed{}, nil
	case collection.EventTypeReordered:
		return &collection.Reordered{}, nil
	case collection.EventTypeDeleted:
		return &collection.Deleted{}, nil
	case collection.EventTypeRestored:
		return &collection.Restored{}, nil
	case collection.EventTypeSettingsUpdated:
		return &collection.SettingsUpdated{}, nil
	case collection.EventTypeFavorited:
		return &collection.Favorited{}, nil
	case collection.EventTypeUnfavorited:
		return &collection.Unfavorited{}, nil
	case collection.EventTypeAccessed:
		return &collection.Accessed{}, nil
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}

// setBaseEvent writes the reconstructed base into the concrete event.
func setBaseEvent(evt event.DomainEvent, base event.BaseEvent) {
	switch e := evt.(type) {
	case *entry.TaskCreated:
		e.BaseEvent = base
	case *entry.TaskCompleted:
		e.BaseEvent = base
	case *entry.TaskReopened:
		e.BaseEvent = base
	case *entry.TaskTitleChanged:
		e.BaseEvent = base
	case *entry.TaskDeleted:
		e.BaseEvent = base
	case *entry.TaskReordered:
		e.BaseEvent = base
	case *entry.TaskMigrated:
		e.BaseEvent = base
	case *entry.TaskAddedToCollection:
		e.BaseEvent = base
	case *entry.TaskRemovedFromCollection:
		e.BaseEvent = base
	case *entry.NoteCreated:
		e.BaseEvent = base
	case *entry.NoteContentChanged:
		e.BaseEvent = base
	case *entry.NoteDeleted:
		e.BaseEvent = base
	case *entry.NoteReordered:
		e.BaseEvent = base
	case *entry.NoteMigrated:
		e.BaseEvent = base
	case *entry.EventCreated:
		e.BaseEvent = base
	case *entry.EventContentChanged:
		e.BaseEvent = base
	case *entry.EventDateChanged:
		e.BaseEvent = base
	case *entry.EventDeleted:
		e.BaseEvent = base
	case *entry.EventReordered:
		e.BaseEvent = base
	case *entry.EventMigrated:
		e.BaseEvent = base
	case *entry.EntryMovedToCollection:
		e.BaseEvent = base
	case *collection.Created:
		e.BaseEvent = base
	case *collection.Renamed:
		e.BaseEvent = base
	case *collection.Reordered:
		e.BaseEvent = base
	case *collection.Deleted:
		e.BaseEvent = base
	case *collection.Restored:
		e.BaseEvent = base
	case *collection.SettingsUpdated:
		e.BaseEvent = base
	case *collection.Favorited:
		e.BaseEvent = base
	case *collection.Unfavorited:
		e.BaseEvent = base
	case *collection.Accessed:
		e.BaseEvent = base
	}
}
