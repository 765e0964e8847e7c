package collection

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/psychosledge/squickr-life/internal/domain/errs"
)

// MaxNameLength is the maximum collection name length after trimming.
const MaxNameLength = 500

// NormalizeName trims and validates a collection name, returning the
// trimmed form.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	n := utf8.RuneCountInString(trimmed)
	if n == 0 {
		return "", fmt.Errorf("%w: collection name is empty", errs.ErrInvalidInput)
	}
	if n > MaxNameLength {
		return "", fmt.Errorf("%w: collection name exceeds %d characters", errs.ErrInvalidInput, MaxNameLength)
	}
	return trimmed, nil
}

// NameKey normalizes a name for duplicate detection.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ValidateType checks the collection type tag.
func ValidateType(t Type) error {
	for _, known := range Types() {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown collection type %q", errs.ErrInvalidInput, string(t))
}

// ValidateDate checks the date against the collection type: dated types
// require their exact layout, all other types forbid a date.
func ValidateDate(t Type, date string) error {
	if !t.HasDate() {
		if date != "" {
			return fmt.Errorf("%w: %s collections do not take a date", errs.ErrInvalidInput, string(t))
		}
		return nil
	}
	if date == "" {
		return fmt.Errorf("%w: %s collections require a date", errs.ErrInvalidInput, string(t))
	}
	layout := t.DateLayout()
	parsed, err := time.Parse(layout, date)
	if err != nil || parsed.Format(layout) != date {
		return fmt.Errorf("%w: date %q does not match %s", errs.ErrInvalidInput, date, layout)
	}
	return nil
}
