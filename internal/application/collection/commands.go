// Package collection contains the command handlers for collection intents:
// creation with natural-key idempotency, renaming, reordering, soft delete
// and restore, settings, favorites, and access stamping.
package collection

import "github.com/psychosledge/squickr-life/internal/domain/collection"

// CreateCollectionCommand contains data for creating a collection
type CreateCollectionCommand struct {
	Name   string
	Type   collection.Type // defaults to log
	Date   string          // required for daily/monthly/yearly
	UserID string
}

// CommandName returns the command name
func (c CreateCollectionCommand) CommandName() string { return "CreateCollection" }

// RenameCollectionCommand carries a new collection name
type RenameCollectionCommand struct {
	CollectionID string
	Name         string
	UserID       string
}

// CommandName returns the command name
func (c RenameCollectionCommand) CommandName() string { return "RenameCollection" }

// ReorderCollectionCommand places a collection between two neighbors
type ReorderCollectionCommand struct {
	CollectionID         string
	PreviousCollectionID string
	NextCollectionID     string
	UserID               string
}

// CommandName returns the command name
func (c ReorderCollectionCommand) CommandName() string { return "ReorderCollection" }

// DeleteCollectionCommand soft-deletes a collection
type DeleteCollectionCommand struct {
	CollectionID string
	UserID       string
}

// CommandName returns the command name
func (c DeleteCollectionCommand) CommandName() string { return "DeleteCollection" }

// RestoreCollectionCommand reverses a soft delete
type RestoreCollectionCommand struct {
	CollectionID string
	UserID       string
}

// CommandName returns the command name
func (c RestoreCollectionCommand) CommandName() string { return "RestoreCollection" }

// UpdateCollectionSettingsCommand replaces a collection's settings
type UpdateCollectionSettingsCommand struct {
	CollectionID string
	Settings     collection.Settings
	UserID       string
}

// CommandName returns the command name
func (c UpdateCollectionSettingsCommand) CommandName() string { return "UpdateCollectionSettings" }

// FavoriteCollectionCommand marks a collection as favorite
type FavoriteCollectionCommand struct {
	CollectionID string
	UserID       string
}

// CommandName returns the command name
func (c FavoriteCollectionCommand) CommandName() string { return "FavoriteCollection" }

// UnfavoriteCollectionCommand clears a collection's favorite flag
type UnfavoriteCollectionCommand struct {
	CollectionID string
	UserID       string
}

// CommandName returns the command name
func (c UnfavoriteCollectionCommand) CommandName() string { return "UnfavoriteCollection" }

// AccessCollectionCommand stamps the collection's last access time
type AccessCollectionCommand struct {
	CollectionID string
	UserID       string
}

// CommandName returns the command name
func (c AccessCollectionCommand) CommandName() string { return "AccessCollection" }
