// Package events defines the registration event payloads shared by the
// publisher and the auditor consumer.
package events

import "time"

// Topic is the Kafka topic carrying registration events.
const Topic = "registration_events"

// Event type values carried in the event_type message header.
const (
	TypeParticipantSignedUp     = "registration.signed_up"
	TypeParticipantUnregistered = "registration.unregistered"
)

// ParticipantSignedUp is emitted when a student joins an activity roster.
type ParticipantSignedUp struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ParticipantUnregistered is emitted when a student leaves an activity roster.
type ParticipantUnregistered struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}
