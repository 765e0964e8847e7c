package event

import "time"

// Metadata carries contextual information about an event
type Metadata struct {
	UserID        string    `json:"user_id,omitempty"        bson:"user_id,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty" bson:"correlation_id,omitempty"`
	CausationID   string    `json:"causation_id,omitempty"   bson:"causation_id,omitempty"`
	Timestamp     time.Time `json:"timestamp,omitzero"       bson:"timestamp,omitempty"`
}

// NewMetadata creates metadata for a command issued by userID
func NewMetadata(userID, correlationID string, at time.Time) Metadata {
	return Metadata{
		UserID:        userID,
		CorrelationID: correlationID,
		Timestamp:     at,
	}
}

// WithCausation sets the id of the event that caused this one
func (m Metadata) WithCausation(causationID string) Metadata {
	m.CausationID = causationID
	return m
}
