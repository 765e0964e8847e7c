package entry

import (
	"time"

	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// Event types
const (
	EventTypeTaskCreated               = "task.created"
	EventTypeTaskCompleted             = "task.completed"
	EventTypeTaskReopened              = "task.reopened"
	EventTypeTaskTitleChanged          = "task.title_changed"
	EventTypeTaskDeleted               = "task.deleted"
	EventTypeTaskReordered             = "task.reordered"
	EventTypeTaskMigrated              = "task.migrated"
	EventTypeTaskAddedToCollection     = "task.added_to_collection"
	EventTypeTaskRemovedFromCollection = "task.removed_from_collection"

	EventTypeNoteCreated        = "note.created"
	EventTypeNoteContentChanged = "note.content_changed"
	EventTypeNoteDeleted        = "note.deleted"
	EventTypeNoteReordered      = "note.reordered"
	EventTypeNoteMigrated       = "note.migrated"

	EventTypeEventCreated        = "event.created"
	EventTypeEventContentChanged = "event.content_changed"
	EventTypeEventDateChanged    = "event.date_changed"
	EventTypeEventDeleted        = "event.deleted"
	EventTypeEventReordered      = "event.reordered"
	EventTypeEventMigrated       = "event.migrated"

	EventTypeEntryMovedToCollection = "entry.moved_to_collection"
)

// TaskCreated is the birth event of a task
type TaskCreated struct {
	event.BaseEvent `json:"-" bson:"-"`

	Title         string `json:"title"`
	CollectionID  string `json:"collectionId,omitempty"`
	Order         string `json:"order"`
	ParentEntryID string `json:"parentEntryId,omitempty"`
}

// NewTaskCreated creates a TaskCreated event
func NewTaskCreated(
	taskID string,
	version int,
	at time.Time,
	md event.Metadata,
	title, collectionID, order, parentEntryID string,
) *TaskCreated {
	return &TaskCreated{
		BaseEvent:     event.NewBaseEvent(EventTypeTaskCreated, taskID, "Task", version, at, md),
		Title:         title,
		CollectionID:  collectionID,
		Order:         order,
		ParentEntryID: parentEntryID,
	}
}

// TaskCompleted marks a task completed
type TaskCompleted struct {
	event.BaseEvent `json:"-" bson:"-"`

	CompletedAt time.Time `json:"completedAt"`
}

// NewTaskCompleted creates a TaskCompleted event
func NewTaskCompleted(taskID string, version int, at time.Time, md event.Metadata) *TaskCompleted {
	return &TaskCompleted{
		BaseEvent:   event.NewBaseEvent(EventTypeTaskCompleted, taskID, "Task", version, at, md),
		CompletedAt: at.UTC().Truncate(time.Millisecond),
	}
}

// TaskReopened reverts a completed task to open
type TaskReopened struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewTaskReopened creates a TaskReopened event
func NewTaskReopened(taskID string, version int, at time.Time, md event.Metadata) *TaskReopened {
	return &TaskReopened{
		BaseEvent: event.NewBaseEvent(EventTypeTaskReopened, taskID, "Task", version, at, md),
	}
}

// TaskTitleChanged carries a new task title
type TaskTitleChanged struct {
	event.BaseEvent `json:"-" bson:"-"`

	Title string `json:"title"`
}

// NewTaskTitleChanged creates a TaskTitleChanged event
func NewTaskTitleChanged(taskID string, version int, at time.Time, md event.Metadata, title string) *TaskTitleChanged {
	return &TaskTitleChanged{
		BaseEvent: event.NewBaseEvent(EventTypeTaskTitleChanged, taskID, "Task", version, at, md),
		Title:     title,
	}
}

// TaskDeleted soft-deletes a task
type TaskDeleted struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewTaskDeleted creates a TaskDeleted event
func NewTaskDeleted(taskID string, version int, at time.Time, md event.Metadata) *TaskDeleted {
	return &TaskDeleted{
		BaseEvent: event.NewBaseEvent(EventTypeTaskDeleted, taskID, "Task", version, at, md),
	}
}

// TaskReordered carries a task's new order key
type TaskReordered struct {
	event.BaseEvent `json:"-" bson:"-"`

	Order string `json:"order"`
}

// NewTaskReordered creates a TaskReordered event
func NewTaskReordered(taskID string, version int, at time.Time, md event.Metadata, order string) *TaskReordered {
	return &TaskReordered{
		BaseEvent: event.NewBaseEvent(EventTypeTaskReordered, taskID, "Task", version, at, md),
		Order:     order,
	}
}

// TaskMigrated records a bullet-journal migration of a task. The original
// aggregate keeps the event; the projection synthesizes the migrated copy
// under MigratedToID. NewParentID is set when the migration cascades from a
// parent so the copy is nested under the parent's own copy.
type TaskMigrated struct {
	event.BaseEvent `json:"-" bson:"-"`

	TargetCollectionID string `json:"targetCollectionId,omitempty"`
	SourceCollectionID string `json:"sourceCollectionId,omitempty"`
	MigratedToID       string `json:"migratedToId"`
	NewParentID        string `json:"newParentId,omitempty"`
}

// NewTaskMigrated creates a TaskMigrated event
func NewTaskMigrated(
	taskID string,
	version int,
	at time.Time,
	md event.Metadata,
	targetCollectionID, sourceCollectionID, migratedToID, newParentID string,
) *TaskMigrated {
	return &TaskMigrated{
		BaseEvent:          event.NewBaseEvent(EventTypeTaskMigrated, taskID, "Task", version, at, md),
		TargetCollectionID: targetCollectionID,
		SourceCollectionID: sourceCollectionID,
		MigratedToID:       migratedToID,
		NewParentID:        newParentID,
	}
}

// TaskAddedToCollection adds a task to a collection's membership
type TaskAddedToCollection struct {
	event.BaseEvent `json:"-" bson:"-"`

	CollectionID string `json:"collectionId"`
}

// NewTaskAddedToCollection creates a TaskAddedToCollection event
func NewTaskAddedToCollection(
	taskID string,
	version int,
	at time.Time,
	md event.Metadata,
	collectionID string,
) *TaskAddedToCollection {
	return &TaskAddedToCollection{
		BaseEvent:    event.NewBaseEvent(EventTypeTaskAddedToCollection, taskID, "Task", version, at, md),
		CollectionID: collectionID,
	}
}

// TaskRemovedFromCollection removes a task from a collection's membership
type TaskRemovedFromCollection struct {
	event.BaseEvent `json:"-" bson:"-"`

	CollectionID string `json:"collectionId"`
}

// NewTaskRemovedFromCollection creates a TaskRemovedFromCollection event
func NewTaskRemovedFromCollection(
	taskID string,
	version int,
	at time.Time,
	md event.Metadata,
	collectionID string,
) *TaskRemovedFromCollection {
	return &TaskRemovedFromCollection{
		BaseEvent:    event.NewBaseEvent(EventTypeTaskRemovedFromCollection, taskID, "Task", version, at, md),
		CollectionID: collectionID,
	}
}

// NoteCreated is the birth event of a note
type NoteCreated struct {
	event.BaseEvent `json:"-" bson:"-"`

	Content      string `json:"content"`
	CollectionID string `json:"collectionId,omitempty"`
	Order        string `json:"order"`
}

// NewNoteCreated creates a NoteCreated event
func NewNoteCreated(
	noteID string,
	version int,
	at time.Time,
	md event.Metadata,
	content, collectionID, order string,
) *NoteCreated {
	return &NoteCreated{
		BaseEvent:    event.NewBaseEvent(EventTypeNoteCreated, noteID, "Note", version, at, md),
		Content:      content,
		CollectionID: collectionID,
		Order:        order,
	}
}

// NoteContentChanged carries new note content
type NoteContentChanged struct {
	event.BaseEvent `json:"-" bson:"-"`

	Content string `json:"content"`
}

// NewNoteContentChanged creates a NoteContentChanged event
func NewNoteContentChanged(
	noteID string,
	version int,
	at time.Time,
	md event.Metadata,
	content string,
) *NoteContentChanged {
	return &NoteContentChanged{
		BaseEvent: event.NewBaseEvent(EventTypeNoteContentChanged, noteID, "Note", version, at, md),
		Content:   content,
	}
}

// NoteDeleted soft-deletes a note
type NoteDeleted struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewNoteDeleted creates a NoteDeleted event
func NewNoteDeleted(noteID string, version int, at time.Time, md event.Metadata) *NoteDeleted {
	return &NoteDeleted{
		BaseEvent: event.NewBaseEvent(EventTypeNoteDeleted, noteID, "Note", version, at, md),
	}
}

// NoteReordered carries a note's new order key
type NoteReordered struct {
	event.BaseEvent `json:"-" bson:"-"`

	Order string `json:"order"`
}

// NewNoteReordered creates a NoteReordered event
func NewNoteReordered(noteID string, version int, at time.Time, md event.Metadata, order string) *NoteReordered {
	return &NoteReordered{
		BaseEvent: event.NewBaseEvent(EventTypeNoteReordered, noteID, "Note", version, at, md),
		Order:     order,
	}
}

// NoteMigrated records a bullet-journal migration of a note
type NoteMigrated struct {
	event.BaseEvent `json:"-" bson:"-"`

	TargetCollectionID string `json:"targetCollectionId,omitempty"`
	SourceCollectionID string `json:"sourceCollectionId,omitempty"`
	MigratedToID       string `json:"migratedToId"`
}

// NewNoteMigrated creates a NoteMigrated event
func NewNoteMigrated(
	noteID string,
	version int,
	at time.Time,
	md event.Metadata,
	targetCollectionID, sourceCollectionID, migratedToID string,
) *NoteMigrated {
	return &NoteMigrated{
		BaseEvent:          event.NewBaseEvent(EventTypeNoteMigrated, noteID, "Note", version, at, md),
		TargetCollectionID: targetCollectionID,
		SourceCollectionID: sourceCollectionID,
		MigratedToID:       migratedToID,
	}
}

// EventCreated is the birth event of a journal event
type EventCreated struct {
	event.BaseEvent `json:"-" bson:"-"`

	Content      string `json:"content"`
	CollectionID string `json:"collectionId,omitempty"`
	Order        string `json:"order"`
	EventDate    string `json:"eventDate,omitempty"`
}

// NewEventCreated creates an EventCreated event
func NewEventCreated(
	eventID string,
	version int,
	at time.Time,
	md event.Metadata,
	content, collectionID, order, eventDate string,
) *EventCreated {
	return &EventCreated{
		BaseEvent:    event.NewBaseEvent(EventTypeEventCreated, eventID, "Event", version, at, md),
		Content:      content,
		CollectionID: collectionID,
		Order:        order,
		EventDate:    eventDate,
	}
}

// EventContentChanged carries new event content
type EventContentChanged struct {
	event.BaseEvent `json:"-" bson:"-"`

	Content string `json:"content"`
}

// NewEventContentChanged creates an EventContentChanged event
func NewEventContentChanged(
	eventID string,
	version int,
	at time.Time,
	md event.Metadata,
	content string,
) *EventContentChanged {
	return &EventContentChanged{
		BaseEvent: event.NewBaseEvent(EventTypeEventContentChanged, eventID, "Event", version, at, md),
		Content:   content,
	}
}

// EventDateChanged carries a new event date
type EventDateChanged struct {
	event.BaseEvent `json:"-" bson:"-"`

	EventDate string `json:"eventDate,omitempty"`
}

// NewEventDateChanged creates an EventDateChanged event
func NewEventDateChanged(
	eventID string,
	version int,
	at time.Time,
	md event.Metadata,
	eventDate string,
) *EventDateChanged {
	return &EventDateChanged{
		BaseEvent: event.NewBaseEvent(EventTypeEventDateChanged, eventID, "Event", version, at, md),
		EventDate: eventDate,
	}
}

// EventDeleted soft-deletes a journal event
type EventDeleted struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewEventDeleted creates an EventDeleted event
func NewEventDeleted(eventID string, version int, at time.Time, md event.Metadata) *EventDeleted {
	return &EventDeleted{
		BaseEvent: event.NewBaseEvent(EventTypeEventDeleted, eventID, "Event", version, at, md),
	}
}

// EventReordered carries a journal event's new order key
type EventReordered struct {
	event.BaseEvent `json:"-" bson:"-"`

	Order string `json:"order"`
}

// NewEventReordered creates an EventReordered event
func NewEventReordered(eventID string, version int, at time.Time, md event.Metadata, order string) *EventReordered {
	return &EventReordered{
		BaseEvent: event.NewBaseEvent(EventTypeEventReordered, eventID, "Event", version, at, md),
		Order:     order,
	}
}

// EventMigrated records a bullet-journal migration of a journal event
type EventMigrated struct {
	event.BaseEvent `json:"-" bson:"-"`

	TargetCollectionID string `json:"targetCollectionId,omitempty"`
	SourceCollectionID string `json:"sourceCollectionId,omitempty"`
	MigratedToID       string `json:"migratedToId"`
}

// NewEventMigrated creates an EventMigrated event
func NewEventMigrated(
	eventID string,
	version int,
	at time.Time,
	md event.Metadata,
	targetCollectionID, sourceCollectionID, migratedToID string,
) *EventMigrated {
	return &EventMigrated{
		BaseEvent:          event.NewBaseEvent(EventTypeEventMigrated, eventID, "Event", version, at, md),
		TargetCollectionID: targetCollectionID,
		SourceCollectionID: sourceCollectionID,
		MigratedToID:       migratedToID,
	}
}

// EntryMovedToCollection moves an entry of any kind into a collection.
// An empty CollectionID moves the entry out of every collection.
type EntryMovedToCollection struct {
	event.BaseEvent `json:"-" bson:"-"`

	CollectionID     string `json:"collectionId,omitempty"`
	FromCollectionID string `json:"fromCollectionId,omitempty"`
}

// NewEntryMovedToCollection creates an EntryMovedToCollection event
func NewEntryMovedToCollection(
	entryID string,
	kind Kind,
	version int,
	at time.Time,
	md event.Metadata,
	collectionID, fromCollectionID string,
) *EntryMovedToCollection {
	return &EntryMovedToCollection{
		BaseEvent:        event.NewBaseEvent(EventTypeEntryMovedToCollection, entryID, kind.AggregateType(), version, at, md),
		CollectionID:     collectionID,
		FromCollectionID: fromCollectionID,
	}
}
