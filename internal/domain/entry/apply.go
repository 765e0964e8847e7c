package entry

import (
	"slices"
	"time"

	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// NewEntry creates an empty entry ready to fold events
func NewEntry(id string) *Entry {
	return &Entry{ID: id}
}

// Apply folds one event into the entry's state. Events for other aggregates
// must not be passed; unknown event types are ignored so newer logs replay
// on older code.
func (e *Entry) Apply(evt event.DomainEvent) {
	switch ev := evt.(type) {
	case *TaskCreated:
		e.Kind = KindTask
		e.Title = ev.Title
		e.Status = StatusOpen
		e.CreatedAt = ev.OccurredAt()
		e.Order = ev.Order
		e.CollectionID = ev.CollectionID
		e.ParentEntryID = ev.ParentEntryID
		if ev.CollectionID != "" {
			e.CollectionHistory = append(e.CollectionHistory, CollectionHistoryEntry{
				CollectionID: ev.CollectionID,
				AddedAt:      ev.OccurredAt(),
			})
		}

	case *NoteCreated:
		e.Kind = KindNote
		e.Content = ev.Content
		e.CreatedAt = ev.OccurredAt()
		e.Order = ev.Order
		e.CollectionID = ev.CollectionID
		if ev.CollectionID != "" {
			e.CollectionHistory = append(e.CollectionHistory, CollectionHistoryEntry{
				CollectionID: ev.CollectionID,
				AddedAt:      ev.OccurredAt(),
			})
		}

	case *EventCreated:
		e.Kind = KindEvent
		e.Content = ev.Content
		e.CreatedAt = ev.OccurredAt()
		e.Order = ev.Order
		e.CollectionID = ev.CollectionID
		e.EventDate = ev.EventDate
		if ev.CollectionID != "" {
			e.CollectionHistory = append(e.CollectionHistory, CollectionHistoryEntry{
				CollectionID: ev.CollectionID,
				AddedAt:      ev.OccurredAt(),
			})
		}

	case *TaskCompleted:
		e.Status = StatusCompleted
		t := ev.CompletedAt
		e.CompletedAt = &t

	case *TaskReopened:
		e.Status = StatusOpen
		e.CompletedAt = nil

	case *TaskTitleChanged:
		e.Title = ev.Title

	case *NoteContentChanged:
		e.Content = ev.Content

	case *EventContentChanged:
		e.Content = ev.Content

	case *EventDateChanged:
		e.EventDate = ev.EventDate

	case *TaskDeleted, *NoteDeleted, *EventDeleted:
		e.Deleted = true

	case *TaskReordered:
		e.Order = ev.Order

	case *NoteReordered:
		e.Order = ev.Order

	case *EventReordered:
		e.Order = ev.Order

	case *EntryMovedToCollection:
		e.moveTo(ev.CollectionID, ev.OccurredAt())

	case *TaskMigrated:
		e.MigratedTo = ev.MigratedToID
		e.MigratedToCollectionID = ev.TargetCollectionID

	case *NoteMigrated:
		e.MigratedTo = ev.MigratedToID
		e.MigratedToCollectionID = ev.TargetCollectionID

	case *EventMigrated:
		e.MigratedTo = ev.MigratedToID
		e.MigratedToCollectionID = ev.TargetCollectionID

	case *TaskAddedToCollection:
		e.adoptMultiManagement()
		if !slices.Contains(e.Collections, ev.CollectionID) {
			e.Collections = append(e.Collections, ev.CollectionID)
			e.CollectionHistory = append(e.CollectionHistory, CollectionHistoryEntry{
				CollectionID: ev.CollectionID,
				AddedAt:      ev.OccurredAt(),
			})
		}

	case *TaskRemovedFromCollection:
		e.adoptMultiManagement()
		if i := slices.Index(e.Collections, ev.CollectionID); i >= 0 {
			e.Collections = slices.Delete(e.Collections, i, i+1)
			e.closeHistory(ev.CollectionID, ev.OccurredAt())
		}
	}

	e.Version = evt.Version()
}

// moveTo relocates the entry: close every open residency, then open one in
// target (or none when target is empty).
func (e *Entry) moveTo(target string, at time.Time) {
	for i := range e.CollectionHistory {
		if e.CollectionHistory[i].RemovedAt == nil {
			t := at
			e.CollectionHistory[i].RemovedAt = &t
		}
	}
	e.CollectionID = target
	if e.MultiManaged {
		if target == "" {
			e.Collections = nil
			e.CollectionID = ""
		} else {
			e.Collections = []string{target}
		}
	}
	if target != "" {
		e.CollectionHistory = append(e.CollectionHistory, CollectionHistoryEntry{
			CollectionID: target,
			AddedAt:      at,
		})
	}
}

// adoptMultiManagement switches the entry from the legacy single collection
// field to the membership list, seeding the list with the legacy residency.
func (e *Entry) adoptMultiManagement() {
	if e.MultiManaged {
		return
	}
	e.MultiManaged = true
	if e.CollectionID != "" {
		e.Collections = append(e.Collections, e.CollectionID)
		e.CollectionID = ""
	}
}

// closeHistory stamps RemovedAt on the open residency row for collectionID.
func (e *Entry) closeHistory(collectionID string, at time.Time) {
	for i := range e.CollectionHistory {
		if e.CollectionHistory[i].CollectionID == collectionID && e.CollectionHistory[i].RemovedAt == nil {
			t := at
			e.CollectionHistory[i].RemovedAt = &t
		}
	}
}
