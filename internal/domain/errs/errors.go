package errs

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a resource already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput is returned when input data is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when aggregate state is invalid
	ErrInvalidState = errors.New("invalid aggregate state")

	// ErrInvalidTransition is returned when a state transition is invalid
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrCollectionDeleted is returned when mutating a soft-deleted collection
	ErrCollectionDeleted = errors.New("collection is deleted")

	// ErrDepthExceeded is returned when nesting a sub-task under a sub-task
	ErrDepthExceeded = errors.New("sub-task depth limit exceeded")

	// ErrAlreadyMigrated is returned when re-migrating to a different target
	ErrAlreadyMigrated = errors.New("entry already migrated to a different target")
)
