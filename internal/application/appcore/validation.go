package appcore

import (
	"fmt"
	"time"
)

// MaxCreatedAtSkew is how far a createdAt may lead the handler's clock.
const MaxCreatedAtSkew = 2 * time.Minute

// ValidateRequired checks that the string is not empty
func ValidateRequired(field, value string) error {
	if value == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}

// ValidateMaxLength checks the maximum string length
func ValidateMaxLength(field, value string, maxLength int) error {
	if len(value) > maxLength {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", maxLength))
	}
	return nil
}

// ValidateNotFuture checks that a timestamp does not lead now by more than
// the tolerated clock skew.
func ValidateNotFuture(field string, t, now time.Time) error {
	if t.After(now.Add(MaxCreatedAtSkew)) {
		return NewValidationError(field, "cannot be in the future")
	}
	return nil
}
