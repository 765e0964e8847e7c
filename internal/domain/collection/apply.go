package collection

import "github.com/psychosledge/squickr-life/internal/domain/event"

// NewCollection creates an empty collection ready to fold events
func NewCollection(id string) *Collection {
	return &Collection{ID: id}
}

// Apply folds one event into the collection's state. Unknown event types are
// ignored so newer logs replay on older code.
func (c *Collection) Apply(evt event.DomainEvent) {
	switch ev := evt.(type) {
	case *Created:
		c.Name = ev.Name
		c.Type = ev.Type
		c.Date = ev.Date
		c.Order = ev.Order
		c.CreatedBy = ev.CreatedBy
		c.CreatedAt = ev.OccurredAt()

	case *Renamed:
		c.Name = ev.Name

	case *Reordered:
		c.Order = ev.Order

	case *Deleted:
		t := ev.OccurredAt()
		c.DeletedAt = &t

	case *Restored:
		c.DeletedAt = nil

	case *SettingsUpdated:
		// stored as written; migration of the legacy boolean happens on read
		c.Settings = ev.Settings

	case *Favorited:
		c.IsFavorite = true

	case *Unfavorited:
		c.IsFavorite = false

	case *Accessed:
		t := ev.OccurredAt()
		c.LastAccessedAt = &t
	}

	c.Version = evt.Version()
}
