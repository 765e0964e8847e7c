package entry

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/psychosledge/squickr-life/internal/domain/errs"
)

// Content limits after white-space trimming.
const (
	MaxTitleLength   = 500
	MaxContentLength = 5000
)

// NormalizeTitle trims and validates a task title, returning the trimmed form.
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	n := utf8.RuneCountInString(trimmed)
	if n == 0 {
		return "", fmt.Errorf("%w: title is empty", errs.ErrInvalidInput)
	}
	if n > MaxTitleLength {
		return "", fmt.Errorf("%w: title exceeds %d characters", errs.ErrInvalidInput, MaxTitleLength)
	}
	return trimmed, nil
}

// NormalizeContent trims and validates note/event content, returning the
// trimmed form.
func NormalizeContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	n := utf8.RuneCountInString(trimmed)
	if n == 0 {
		return "", fmt.Errorf("%w: content is empty", errs.ErrInvalidInput)
	}
	if n > MaxContentLength {
		return "", fmt.Errorf("%w: content exceeds %d characters", errs.ErrInvalidInput, MaxContentLength)
	}
	return trimmed, nil
}

// ValidateEventDate checks an optional YYYY-MM-DD event date.
func ValidateEventDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: event date %q is not YYYY-MM-DD", errs.ErrInvalidInput, date)
	}
	return nil
}
