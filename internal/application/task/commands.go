// Package task contains the command handlers for task intents: creation,
// sub-tasks, completion and deletion cascades, reordering, migration, and
// multi-collection membership.
package task

import "time"

// CreateTaskCommand contains data for creating a task
type CreateTaskCommand struct {
	Title        string
	CollectionID string     // optional initial collection
	UserID       string     // optional acting user
	CreatedAt    *time.Time // optional client timestamp, validated against the handler clock
}

// CommandName returns the command name
func (c CreateTaskCommand) CommandName() string { return "CreateTask" }

// CreateSubTaskCommand contains data for creating a sub-task under a parent
type CreateSubTaskCommand struct {
	Title         string
	ParentEntryID string
	UserID        string
}

// CommandName returns the command name
func (c CreateSubTaskCommand) CommandName() string { return "CreateSubTask" }

// CompleteTaskCommand completes a single open task
type CompleteTaskCommand struct {
	TaskID string
	UserID string
}

// CommandName returns the command name
func (c CompleteTaskCommand) CommandName() string { return "CompleteTask" }

// CompleteParentTaskCommand completes a parent and, when confirmed, its
// incomplete children in one batch
type CompleteParentTaskCommand struct {
	TaskID    string
	Confirmed bool
	UserID    string
}

// CommandName returns the command name
func (c CompleteParentTaskCommand) CommandName() string { return "CompleteParentTask" }

// ReopenTaskCommand reverts a completed task to open
type ReopenTaskCommand struct {
	TaskID string
	UserID string
}

// CommandName returns the command name
func (c ReopenTaskCommand) CommandName() string { return "ReopenTask" }

// DeleteTaskCommand soft-deletes a single task
type DeleteTaskCommand struct {
	TaskID string
	UserID string
}

// CommandName returns the command name
func (c DeleteTaskCommand) CommandName() string { return "DeleteTask" }

// DeleteParentTaskCommand deletes a parent and, when confirmed, its
// children in one batch
type DeleteParentTaskCommand struct {
	TaskID    string
	Confirmed bool
	UserID    string
}

// CommandName returns the command name
func (c DeleteParentTaskCommand) CommandName() string { return "DeleteParentTask" }

// ReorderTaskCommand places a task between two neighbors, which may be
// entries of any kind. Empty neighbor ids mean start/end of the list.
type ReorderTaskCommand struct {
	TaskID          string
	PreviousEntryID string
	NextEntryID     string
	UserID          string
}

// CommandName returns the command name
func (c ReorderTaskCommand) CommandName() string { return "ReorderTask" }

// UpdateTaskTitleCommand carries a new title for a task
type UpdateTaskTitleCommand struct {
	TaskID string
	Title  string
	UserID string
}

// CommandName returns the command name
func (c UpdateTaskTitleCommand) CommandName() string { return "UpdateTaskTitle" }

// MigrateTaskCommand migrates a task (and its children) to a collection in
// the bullet-journal sense: the original becomes a strike-through reference
// and a copy becomes active in the target.
type MigrateTaskCommand struct {
	TaskID             string
	TargetCollectionID string // empty migrates out of any collection
	UserID             string
}

// CommandName returns the command name
func (c MigrateTaskCommand) CommandName() string { return "MigrateTask" }

// AddTaskToCollectionCommand adds a task to a collection's membership
type AddTaskToCollectionCommand struct {
	TaskID       string
	CollectionID string
	UserID       string
}

// CommandName returns the command name
func (c AddTaskToCollectionCommand) CommandName() string { return "AddTaskToCollection" }

// RemoveTaskFromCollectionCommand removes a task from a collection's
// membership; removing the last membership leaves an orphan
type RemoveTaskFromCollectionCommand struct {
	TaskID       string
	CollectionID string
	UserID       string
}

// CommandName returns the command name
func (c RemoveTaskFromCollectionCommand) CommandName() string { return "RemoveTaskFromCollection" }
