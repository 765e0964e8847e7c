package collection

import (
	"time"

	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// Event types
const (
	EventTypeCreated         = "collection.created"
	EventTypeRenamed         = "collection.renamed"
	EventTypeReordered       = "collection.reordered"
	EventTypeDeleted         = "collection.deleted"
	EventTypeRestored        = "collection.restored"
	EventTypeSettingsUpdated = "collection.settings_updated"
	EventTypeFavorited       = "collection.favorited"
	EventTypeUnfavorited     = "collection.unfavorited"
	EventTypeAccessed        = "collection.accessed"
)

const aggregateType = "Collection"

// Created is the birth event of a collection
type Created struct {
	event.BaseEvent `json:"-" bson:"-"`

	Name      string `json:"name"`
	Type      Type   `json:"type"`
	Date      string `json:"date,omitempty"`
	Order     string `json:"order"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// NewCreated creates a Created event
func NewCreated(
	collectionID string,
	version int,
	at time.Time,
	md event.Metadata,
	name string,
	typ Type,
	date, order, createdBy string,
) *Created {
	return &Created{
		BaseEvent: event.NewBaseEvent(EventTypeCreated, collectionID, aggregateType, version, at, md),
		Name:      name,
		Type:      typ,
		Date:      date,
		Order:     order,
		CreatedBy: createdBy,
	}
}

// Renamed carries a collection's new name
type Renamed struct {
	event.BaseEvent `json:"-" bson:"-"`

	Name string `json:"name"`
}

// NewRenamed creates a Renamed event
func NewRenamed(collectionID string, version int, at time.Time, md event.Metadata, name string) *Renamed {
	return &Renamed{
		BaseEvent: event.NewBaseEvent(EventTypeRenamed, collectionID, aggregateType, version, at, md),
		Name:      name,
	}
}

// Reordered carries a collection's new order key
type Reordered struct {
	event.BaseEvent `json:"-" bson:"-"`

	Order string `json:"order"`
}

// NewReordered creates a Reordered event
func NewReordered(collectionID string, version int, at time.Time, md event.Metadata, order string) *Reordered {
	return &Reordered{
		BaseEvent: event.NewBaseEvent(EventTypeReordered, collectionID, aggregateType, version, at, md),
		Order:     order,
	}
}

// Deleted soft-deletes a collection
type Deleted struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewDeleted creates a Deleted event
func NewDeleted(collectionID string, version int, at time.Time, md event.Metadata) *Deleted {
	return &Deleted{
		BaseEvent: event.NewBaseEvent(EventTypeDeleted, collectionID, aggregateType, version, at, md),
	}
}

// Restored reverses a soft delete
type Restored struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewRestored creates a Restored event
func NewRestored(collectionID string, version int, at time.Time, md event.Metadata) *Restored {
	return &Restored{
		BaseEvent: event.NewBaseEvent(EventTypeRestored, collectionID, aggregateType, version, at, md),
	}
}

// SettingsUpdated carries a full settings payload as written by the client
type SettingsUpdated struct {
	event.BaseEvent `json:"-" bson:"-"`

	Settings Settings `json:"settings"`
}

// NewSettingsUpdated creates a SettingsUpdated event
func NewSettingsUpdated(
	collectionID string,
	version int,
	at time.Time,
	md event.Metadata,
	settings Settings,
) *SettingsUpdated {
	return &SettingsUpdated{
		BaseEvent: event.NewBaseEvent(EventTypeSettingsUpdated, collectionID, aggregateType, version, at, md),
		Settings:  settings,
	}
}

// Favorited marks a collection as favorite
type Favorited struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewFavorited creates a Favorited event
func NewFavorited(collectionID string, version int, at time.Time, md event.Metadata) *Favorited {
	return &Favorited{
		BaseEvent: event.NewBaseEvent(EventTypeFavorited, collectionID, aggregateType, version, at, md),
	}
}

// Unfavorited clears a collection's favorite flag
type Unfavorited struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewUnfavorited creates an Unfavorited event
func NewUnfavorited(collectionID string, version int, at time.Time, md event.Metadata) *Unfavorited {
	return &Unfavorited{
		BaseEvent: event.NewBaseEvent(EventTypeUnfavorited, collectionID, aggregateType, version, at, md),
	}
}

// Accessed stamps the collection's last access time
type Accessed struct {
	event.BaseEvent `json:"-" bson:"-"`
}

// NewAccessed creates an Accessed event
func NewAccessed(collectionID string, version int, at time.Time, md event.Metadata) *Accessed {
	return &Accessed{
		BaseEvent: event.NewBaseEvent(EventTypeAccessed, collectionID, aggregateType, version, at, md),
	}
}
