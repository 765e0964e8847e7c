package uuid

import "github.com/google/uuid"

// UUID is a string-backed UUID value
type UUID string

// NewUUID creates a new random (v4) UUID
func NewUUID() UUID {
	return UUID(uuid.New().String())
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (UUID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return UUID(s), nil
}

// MustParseUUID parses a string into a UUID or panics
func MustParseUUID(s string) UUID {
	id, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (u UUID) String() string {
	return string(u)
}

// IsZero checks whether the UUID is empty
func (u UUID) IsZero() bool {
	return u == ""
}
